package database

import (
	"gorm.io/gorm"

	"github.com/showcasehq/showcase-backend/models"
)

// DemoUserEmail identifies the single stand-in author. There is no account
// system; project submissions without an author id resolve to this user.
const DemoUserEmail = "demo@example.com"

var seedCategories = []string{"AI", "Web3", "Game", "Tool", "Social"}

var seedTags = []string{"Next.js", "React", "TypeScript", "Tailwind", "Prisma"}

// Seed inserts the demo categories, tags and user. Idempotent: rows are
// looked up by their uniqueness key and only created when absent.
func Seed(db *gorm.DB) error {
	for _, name := range seedCategories {
		category := models.Category{Name: name, Slug: Slugify(name)}
		if err := db.Where("slug = ?", category.Slug).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	for _, name := range seedTags {
		tag := models.Tag{Name: name, Slug: Slugify(name)}
		if err := db.Where("slug = ?", tag.Slug).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
	}

	image := "https://github.com/shadcn.png"
	user := models.User{
		Email: DemoUserEmail,
		Name:  "Demo User",
		Image: &image,
	}
	return db.Where("email = ?", user.Email).FirstOrCreate(&user).Error
}
