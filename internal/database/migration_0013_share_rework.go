package database

import (
	"time"

	"gorm.io/gorm"
)

// reworkShare carries the three columns that replace the delimited share_ids
// value, plus the dropped column for the rollback path.
type reworkShare struct {
	ShareID       int32   `gorm:"not null;default:0"`
	ShareType     int32   `gorm:"not null;default:0"`
	ShareUniqueID *string `gorm:"size:64;not null;default:''"`
	ShareIDs      *string `gorm:"column:share_ids;size:2000;not null;default:''"`
}

func (reworkShare) TableName() string { return "shares" }

// shareActivity is the visit log as created by this step, frozen like the
// 0001 snapshots.
type shareActivity struct {
	ID          int32 `gorm:"primaryKey;autoIncrement"`
	ShareID     int32 `gorm:"column:share_id;not null"`
	UserID      *int32
	CreatedAt   time.Time `gorm:"not null"`
	ByUserAgent *string   `gorm:"size:2000"`
	Client      string    `gorm:"size:1000;not null"`
	IPAddress   *string   `gorm:"column:ip_address;size:255"`
}

func (shareActivity) TableName() string { return "share_activities" }

func migrationShareRework() Migration {
	return Migration{
		ID:      "0013_share_rework",
		Comment: "replace delimited share ids with a typed target, add share visit log",
		Up: func(tx *gorm.DB) error {
			if err := dropColumn(tx, &reworkShare{}, "ShareIDs"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&reworkShare{}, "ShareID"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&reworkShare{}, "ShareType"); err != nil {
				return err
			}
			if err := tx.Migrator().AddColumn(&reworkShare{}, "ShareUniqueID"); err != nil {
				return err
			}
			return tx.AutoMigrate(&shareActivity{})
		},
		// Lossy rollback: the original delimited share_ids values cannot be
		// reconstructed from the typed target, so the column comes back empty.
		Down: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&shareActivity{}); err != nil {
				return err
			}
			if err := dropColumn(tx, &reworkShare{}, "ShareID"); err != nil {
				return err
			}
			if err := dropColumn(tx, &reworkShare{}, "ShareType"); err != nil {
				return err
			}
			if err := dropColumn(tx, &reworkShare{}, "ShareUniqueID"); err != nil {
				return err
			}
			return tx.Migrator().AddColumn(&reworkShare{}, "ShareIDs")
		},
	}
}
