package scheduler

import (
	"time"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/logger"
	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// FundingWatchJob 募资窗口巡检任务。筹款状态是读时算出的，
// 这里只做观测：记录刚收官的项目结果和进入最后24小时的项目。
type FundingWatchJob struct {
	db           *gorm.DB
	config       *config.Config
	projectLogic *logic.ProjectLogic
}

// NewFundingWatchJob 创建募资窗口巡检任务
func NewFundingWatchJob(db *gorm.DB, cfg *config.Config) *FundingWatchJob {
	return &FundingWatchJob{
		db:           db,
		config:       cfg,
		projectLogic: logic.NewProjectLogic(db, cfg.Funding),
	}
}

// GetName 获取任务名称
func (j *FundingWatchJob) GetName() string {
	return "funding_watch"
}

// GetSchedule 获取调度配置
func (j *FundingWatchJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *FundingWatchJob) Execute() {
	now := time.Now()
	interval := time.Duration(j.config.Scheduler.Interval) * time.Second

	// 刚收官的项目：end落在上个巡检周期内
	var closed []model.Project
	if err := j.db.Where("\"end\" > ? AND \"end\" <= ?", now.Add(-interval), now).
		Find(&closed).Error; err != nil {
		logger.Error("Failed to fetch closed projects: %v", err)
		return
	}

	for i := range closed {
		project := &closed[i]
		achieved, err := j.projectLogic.Achieved(project.ID)
		if err != nil {
			logger.Error("Failed to compute achieved for project %d: %v", project.ID, err)
			continue
		}
		if achieved >= project.Goal {
			logger.Info("Project %q closed financed: %d/%d %s",
				project.Slug, achieved, project.Goal, project.Currency)
		} else {
			logger.Info("Project %q closed unfinanced: %d/%d %s",
				project.Slug, achieved, project.Goal, project.Currency)
		}
	}

	// 进入最后24小时的项目
	var ending []model.Project
	if err := j.db.Scopes(logic.Funding(now)).
		Where("\"end\" < ?", now.Add(24*time.Hour)).
		Find(&ending).Error; err != nil {
		logger.Error("Failed to fetch ending projects: %v", err)
		return
	}

	for i := range ending {
		project := &ending[i]
		display, err := j.projectLogic.AchievedDisplay(project)
		if err != nil {
			logger.Error("Failed to compute funding state for project %d: %v", project.ID, err)
			continue
		}
		logger.Info("Project %q in final 24 hours: %s", project.Slug, display)
	}

	logger.Debug("Funding watch completed: %d closed, %d ending", len(closed), len(ending))
}
