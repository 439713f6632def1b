package main

import (
	"fmt"
	"log"

	"github.com/localnerve/enxovaldb/internal/database"
	"github.com/localnerve/enxovaldb/internal/logger"
	"gorm.io/driver/sqlite"
)

// Prints the table GORM creates for the SQL document store, as SQLite sees it.
func main() {
	db, err := database.Open(sqlite.Open(":memory:"), logger.Discard())
	if err != nil {
		log.Fatal(err)
	}

	// One connection, so every query sees the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate to see what GORM creates
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&schema)
		fmt.Println(schema)

		var indexes []string
		db.Raw("SELECT sql FROM sqlite_master WHERE type='index' AND tbl_name = ? AND sql IS NOT NULL", table).Scan(&indexes)
		for _, index := range indexes {
			fmt.Println(index)
		}
	}
}
