package database

import (
	"gorm.io/gorm"
)

// pinUserPin is the user_pins table as created by this step.
type pinUserPin struct {
	ID      int32 `gorm:"primaryKey;autoIncrement"`
	UserID  int32 `gorm:"uniqueIndex:idx_user_pins_user_id_pin_id_pin_type;not null"`
	PinID   int32 `gorm:"uniqueIndex:idx_user_pins_user_id_pin_id_pin_type;not null"`
	PinType int32 `gorm:"uniqueIndex:idx_user_pins_user_id_pin_id_pin_type;not null"`
	InitEnvelope

	User *initUser `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (pinUserPin) TableName() string { return "user_pins" }

func migrationUserPins() Migration {
	return Migration{
		ID:      "0009_user_pins",
		Comment: "add per-user pinned entities",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&pinUserPin{})
		},
		Down: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&pinUserPin{})
		},
	}
}
