package logic

import (
	"testing"
	"time"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/database"
	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testFundingConfig() config.FundingConfig {
	return config.FundingConfig{
		Currencies:      []string{"CHF", "EUR", "USD"},
		DefaultCurrency: "CHF",
		MaxDurationDays: 120,
		DefaultLanguage: "de",
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// 内存库只允许单连接，避免连接池拿到空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestProject(t *testing.T, db *gorm.DB, slug string, goal int64, currency string) *model.Project {
	t.Helper()

	now := time.Now()
	project := &model.Project{
		Title:    "Test " + slug,
		Slug:     slug,
		Goal:     goal,
		Currency: currency,
		Start:    now.Add(-24 * time.Hour),
		End:      now.Add(30 * 24 * time.Hour),
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("create test project: %v", err)
	}
	return project
}

func createTestPledge(t *testing.T, db *gorm.DB, projectID uint, amount int64, status model.PledgeStatus, rewardID *uint) *model.Pledge {
	t.Helper()

	pledge := &model.Pledge{
		ProjectID: projectID,
		RewardID:  rewardID,
		Amount:    amount,
		Status:    status,
	}
	if err := db.Create(pledge).Error; err != nil {
		t.Fatalf("create test pledge: %v", err)
	}
	return pledge
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
