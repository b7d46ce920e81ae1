package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string // "sqlite" or "mysql"
	Path     string // sqlite file path
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Connect opens the configured database. TranslateError is on so duplicate
// key violations surface as gorm.ErrDuplicatedKey regardless of dialect.
func Connect(cfg Config) (*gorm.DB, error) {
	opts := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = "pageforge.db"
		}
		return gorm.Open(sqlite.Open(path), opts)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), opts)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
