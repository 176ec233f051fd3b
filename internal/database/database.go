package database

import (
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 迁移所有实体表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Backer{},
		&model.Category{},
		&model.CategoryTranslation{},
		&model.Project{},
		&model.Reward{},
		&model.Pledge{},
		&model.ProjectUpdate{},
		&model.MailTemplate{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// CheckSchema 启动时的健康检查，确认所有实体表都已就位
func CheckSchema(db *gorm.DB) error {
	tables := []interface{}{
		&model.User{},
		&model.Backer{},
		&model.Category{},
		&model.CategoryTranslation{},
		&model.Project{},
		&model.Reward{},
		&model.Pledge{},
		&model.ProjectUpdate{},
		&model.MailTemplate{},
	}
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(table); err != nil {
				return fmt.Errorf("failed to parse model: %w", err)
			}
			return fmt.Errorf("schema check failed: missing table %q", stmt.Schema.Table)
		}
	}
	return nil
}
