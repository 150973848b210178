package repository

import (
	"fmt"
	"time"

	"github.com/dcurrasv25/filmbox-backend/internal/logger"
	"github.com/dcurrasv25/filmbox-backend/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the postgres connection pool and migrates the schema
func InitDB(databaseURL string, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormWriter{log}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the service owns
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Film{},
		&model.WatchedFilm{},
		&model.WishlistFilm{},
		&model.FavoriteFilm{},
		&model.Comment{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// gormWriter routes gorm's own logging through zap
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	if w.log == nil {
		return
	}
	w.log.Warnf(format, args...)
}

// Repositories every store the services depend on
type Repositories struct {
	DB          *gorm.DB
	User        Credentials
	Film        Catalogue
	Memberships map[model.ListKind]Ledger
	Comment     Reviews
}

// NewRepositories wires gorm-backed stores
func NewRepositories(db *gorm.DB) *Repositories {
	memberships := make(map[model.ListKind]Ledger, len(model.ListKinds))
	for _, kind := range model.ListKinds {
		memberships[kind] = NewMembershipRepository(db, kind)
	}
	return &Repositories{
		DB:          db,
		User:        NewUserRepository(db),
		Film:        NewFilmRepository(db),
		Memberships: memberships,
		Comment:     NewCommentRepository(db),
	}
}
