package main

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Orm wraps a single store connection. Every request opens its own
// handle and closes it when done; there is no process-wide pool.
type Orm struct {
	DB *gorm.DB
}

// NewDb opens a connection to the bot store
func NewDb(config *ServiceConfig) (*Orm, error) {
	db, err := gorm.Open("sqlite3", config.Database.File)
	if err != nil {
		return nil, err
	}

	db.SingularTable(true)
	db.LogMode(config.Database.Logging)

	return &Orm{
		DB: db,
	}, nil
}

// Close connection
func (orm *Orm) Close() {
	orm.DB.Close()
}
