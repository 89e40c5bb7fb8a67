package database

import (
	"gorm.io/gorm"
)

type typedLibrary struct {
	Type int32 `gorm:"uniqueIndex:idx_libraries_type;not null"`
}

func (typedLibrary) TableName() string { return "libraries" }

// Storage libraries (type 3) may have any number of rows; every other
// library type stays singular. Partial indexes work on both dialects.
func migrationLibraryTypeConstraint() Migration {
	return Migration{
		ID:      "0016_library_type_constraint",
		Comment: "allow multiple storage libraries, keep other types unique",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropIndex(&typedLibrary{}, "idx_libraries_type"); err != nil {
				return err
			}
			return tx.Exec(`CREATE UNIQUE INDEX idx_libraries_type ON libraries (type) WHERE type <> 3`).Error
		},
		Down: func(tx *gorm.DB) error {
			if err := tx.Exec(`DROP INDEX idx_libraries_type`).Error; err != nil {
				return err
			}
			return tx.Migrator().CreateIndex(&typedLibrary{}, "idx_libraries_type")
		},
	}
}
