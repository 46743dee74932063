package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"giglane/pkg/config"
	"giglane/pkg/errutil"
)

type collectionRow struct {
	Name      string         `gorm:"column:name;primaryKey"`
	Data      datatypes.JSON `gorm:"column:data"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (collectionRow) TableName() string { return "collections" }

// GormGateway persists each collection as a single row; the upsert is one
// statement, which gives the atomic-save guarantee the store requires.
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) (*GormGateway, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, errutil.Persistence("failed to migrate collections table", err)
	}
	return &GormGateway{db: db}, nil
}

func (g *GormGateway) Load(ctx context.Context, collection string) ([]byte, error) {
	var row collectionRow
	err := g.db.WithContext(ctx).Where("name = ?", collection).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errutil.Persistence(fmt.Sprintf("failed to load collection %s", collection), err)
	}
	return []byte(row.Data), nil
}

func (g *GormGateway) Save(ctx context.Context, collection string, data []byte) error {
	row := collectionRow{Name: collection, Data: datatypes.JSON(data), UpdatedAt: time.Now()}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return errutil.Persistence(fmt.Sprintf("failed to save collection %s", collection), err)
	}
	return nil
}

// Dialect picks the gorm dialector from config.
func Dialect(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Database.Type {
	case "sqlite", "":
		return sqlite.Open(cfg.Database.DSN), nil
	case "postgres":
		return postgres.Open(cfg.Database.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}
}

// OpenDB opens the gorm handle with retries, matching the connection
// discipline of the rest of the platform.
func OpenDB(cfg *config.Config, dialector gorm.Dialector) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.AppEnv != "production" {
		logLevel = gormlogger.Info
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(logLevel),
		})
		if err == nil {
			break
		}
		zap.L().Warn("[DB] Database not ready, retrying in 3 seconds...", zap.Int("retry", i+1), zap.Error(err))
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	zap.L().Info("[DB] Database connection successfully configured.")
	return db, nil
}
