package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDatabaseConfig_Defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	config, err := LoadDatabaseConfig()
	assert.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "postgres", config.Driver)
	assert.Equal(t, DefaultMaxOpenConns, config.MaxOpenConns)
	assert.Equal(t, DefaultMaxIdleConns, config.MaxIdleConns)
	assert.Equal(t, DefaultConnMaxLifetime, config.ConnMaxLifetime)
	assert.Equal(t, DefaultConnMaxIdleTime, config.ConnMaxIdleTime)
}

func TestLoadDatabaseConfig_Configured(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("database.driver", "sqlite")
	viper.Set("database.path", "/tmp/test.db")
	viper.Set("database.max_open_conns", 5)
	viper.Set("database.conn_max_lifetime", time.Minute)

	config, err := LoadDatabaseConfig()
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", config.Driver)
	assert.Equal(t, "/tmp/test.db", config.Path)
	assert.Equal(t, 5, config.MaxOpenConns)
	assert.Equal(t, time.Minute, config.ConnMaxLifetime)

	// Unset values still get defaults
	assert.Equal(t, DefaultMaxIdleConns, config.MaxIdleConns)
	assert.Equal(t, DefaultConnMaxIdleTime, config.ConnMaxIdleTime)
}

func TestConfigValidation(t *testing.T) {
	validConfig := &AppConfig{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "postgres",
			Host:   "localhost",
			User:   "testuser",
			DBName: "testdb",
		},
	}

	err := validateConfig(validConfig)
	assert.NoError(t, err)

	// Invalid port
	invalidPortConfig := *validConfig
	invalidPortConfig.Server.Port = 70000
	err = validateConfig(&invalidPortConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server port must be between 1 and 65535")

	// Unknown driver
	badDriverConfig := *validConfig
	badDriverConfig.Database.Driver = "oracle"
	err = validateConfig(&badDriverConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")

	// sqlite requires a path
	sqliteConfig := *validConfig
	sqliteConfig.Database.Driver = "sqlite"
	sqliteConfig.Database.Path = ""
	err = validateConfig(&sqliteConfig)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite driver requires database.path")
}
