package database

import (
	"log"

	capsuleModel "laraigo_backend/internals/features/portal/capsules/model"
	categoryModel "laraigo_backend/internals/features/portal/categories/model"
	demoModel "laraigo_backend/internals/features/portal/demos/model"
	materialModel "laraigo_backend/internals/features/portal/materials/model"
	resourceModel "laraigo_backend/internals/features/portal/resources/model"
)

// Migrate creates/updates the six portal collections.
func Migrate() {
	if err := DB.AutoMigrate(
		&capsuleModel.CapsuleModel{},
		&categoryModel.CategoryModel{},
		&demoModel.IndustryModel{},
		&demoModel.DemoModel{},
		&materialModel.MaterialModel{},
		&resourceModel.ResourceModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
