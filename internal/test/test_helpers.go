package test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"melodee/internal/database"
	"melodee/internal/models"
	"melodee/internal/utils"
)

// OpenTestDB opens a private in-memory SQLite database with foreign keys
// enforced. Each call gets its own database; cache=shared keeps it alive
// across the pooled connections of one *gorm.DB.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// OpenMigratedTestDB opens a test database and applies the full migration
// ladder, so tests run against the same schema production uses.
func OpenMigratedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenTestDB(t)
	log := zerolog.Nop()
	_, err := database.NewMigrator(db, &log).Up(context.Background())
	require.NoError(t, err)
	return db
}

// CreateTestUser creates a user with a bcrypt password digest.
func CreateTestUser(t *testing.T, db *gorm.DB, userName, email, password string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		UserName:           userName,
		UserNameNormalized: utils.NormalizeName(userName),
		Email:              email,
		EmailNormalized:    utils.NormalizeName(email),
		PublicKey:          uuid.NewString(),
		PasswordEncrypted:  hash,
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestLibrary creates a storage library of the given type.
func CreateTestLibrary(t *testing.T, db *gorm.DB, name string, libraryType models.LibraryType) *models.Library {
	t.Helper()

	library := &models.Library{
		Name:      name,
		Path:      "/storage/" + utils.NormalizeName(name),
		Type:      libraryType,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(library).Error)
	return library
}

// CreateTestArtist creates an artist in the given library.
func CreateTestArtist(t *testing.T, db *gorm.DB, libraryID int32, name string) *models.Artist {
	t.Helper()

	artist := &models.Artist{
		LibraryID:      libraryID,
		Name:           name,
		NameNormalized: utils.NormalizeName(name),
		Directory:      name,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, db.Create(artist).Error)
	return artist
}

// WaitForCondition waits for a condition to be true with timeout
func WaitForCondition(condition func() bool, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if condition() {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}

	return timeoutError{}
}

type timeoutError struct{}

func (timeoutError) Error() string {
	return "timeout waiting for condition"
}
