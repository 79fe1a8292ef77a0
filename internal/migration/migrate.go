package migration

import (
	"fmt"

	"github.com/creatorlab/creator-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates the users table and one table per registered content
// type. All content tables share the ContentRecord shape; the
// registry decides how many there are.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}

	for _, ct := range domain.Registry() {
		if err := db.Table(ct.Table).AutoMigrate(&domain.ContentRecord{}); err != nil {
			return fmt.Errorf("migrate %s: %w", ct.Table, err)
		}
	}
	return nil
}
