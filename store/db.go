package store

import (
	"errors"
	"fmt"
	"log"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/webirent/webirent-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store owns the process-wide database handle. It is created once in
// main and injected into everything that needs persistence; the driver
// pools connections underneath.
type Store struct {
	DB *gorm.DB
}

func Connect(dsn string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) AutoMigrate() error {
	if err := s.DB.AutoMigrate(&models.User{}, &models.Template{}, &models.Order{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database synced successfully.")
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isDuplicateKey reports whether err is a unique-index violation. The
// uniqueness constraints on order_number and payment_id are enforced
// here rather than by check-then-act in application code.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *gomysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
