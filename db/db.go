package db

import (
	"log"

	"zeroshot/config"
	"zeroshot/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect opens the database connection (sqlite3 by default) and migrates
// the two tables the service owns.
func Connect() (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Println("Using postgresql connection...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Println("Using sqlite3 connection...")
		dbPath := conf.DbPath
		if dbPath == "" {
			dbPath = "db/app_data.db"
		}
		db, err = gorm.Open("sqlite3", dbPath)
	}

	if err != nil {
		log.Println("Got error when connect database, the error is: " + err.Error())
		return nil, err
	}

	db.LogMode(true)

	if err := db.AutoMigrate(
		&models.GlobalLabel{},
		&models.QueryHistory{},
	).Error; err != nil {
		return nil, err
	}

	return db, nil
}
