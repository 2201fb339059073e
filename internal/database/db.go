package database

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"anka-backend/internal/models"
)

// Init connects to Postgres and runs migrations. The retry loop covers the
// common case of the database container still coming up.
func Init(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		logrus.Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			// surface unique violations as gorm.ErrDuplicatedKey
			TranslateError: true,
		})
		if err == nil {
			logrus.Info("connected to DB successfully")
			break
		}

		logrus.WithError(err).Warn("failed to connect to DB")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		logrus.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Allocation{},
		&models.ChangeLog{},
	); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	return db
}
