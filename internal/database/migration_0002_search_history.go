package database

import (
	"time"

	"gorm.io/gorm"
)

type sharesTable struct{}

func (sharesTable) TableName() string { return "shares" }

// searchHistory is the audit table as created by this step, frozen like the
// 0001 snapshots.
type searchHistory struct {
	ID                 int32     `gorm:"primaryKey;autoIncrement"`
	CreatedAt          time.Time `gorm:"not null"`
	ByUserID           int32     `gorm:"column:by_user_id;not null"`
	ByUserAgent        *string   `gorm:"size:2000"`
	SearchQuery        *string   `gorm:"size:1000"`
	FoundArtistsCount  int32     `gorm:"not null"`
	FoundAlbumsCount   int32     `gorm:"not null"`
	FoundSongsCount    int32     `gorm:"not null"`
	FoundOtherItems    int32     `gorm:"not null"`
	SearchDurationInMs float64   `gorm:"column:search_duration_in_ms;not null"`
}

func (searchHistory) TableName() string { return "search_histories" }

func migrationSearchHistory() Migration {
	return Migration{
		ID:      "0002_search_history",
		Comment: "rename shares.song_ids to share_ids, add search audit log",
		Up: func(tx *gorm.DB) error {
			if err := tx.Migrator().RenameColumn(&sharesTable{}, "song_ids", "share_ids"); err != nil {
				return err
			}
			return tx.AutoMigrate(&searchHistory{})
		},
		Down: func(tx *gorm.DB) error {
			if err := tx.Migrator().DropTable(&searchHistory{}); err != nil {
				return err
			}
			return tx.Migrator().RenameColumn(&sharesTable{}, "share_ids", "song_ids")
		},
	}
}
