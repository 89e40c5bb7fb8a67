package database

import (
	"gorm.io/gorm"
)

type editorUser struct {
	IsEditor bool `gorm:"not null;default:false"`
}

func (editorUser) TableName() string { return "users" }

func migrationUserIsEditor() Migration {
	return Migration{
		ID:      "0008_user_is_editor",
		Comment: "add editor flag to users",
		Up: func(tx *gorm.DB) error {
			return tx.Migrator().AddColumn(&editorUser{}, "IsEditor")
		},
		Down: func(tx *gorm.DB) error {
			return dropColumn(tx, &editorUser{}, "IsEditor")
		},
	}
}
