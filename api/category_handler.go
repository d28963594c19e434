package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/showcasehq/showcase-backend/database"
	"github.com/showcasehq/showcase-backend/errs"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo database.CategoryRepo
}

func newCategoryHandler(categoryRepo database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

func (h categoryHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError(errs.CodeCategoryListFailed, "list", "categories", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, categories)
	}
}
