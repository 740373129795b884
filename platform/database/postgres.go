package database

import (
	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/config"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

func PostgreSQLConnection(cfg config.DBConfig) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.User,
		Addr:     cfg.Addr,
		Password: cfg.Password,
		Database: cfg.Name,
	})
}

// CreateSchema creates the lobby table if it is missing.
func CreateSchema(db *pg.DB) error {
	return db.Model((*models.Game)(nil)).CreateTable(&orm.CreateTableOptions{
		IfNotExists: true,
	})
}
