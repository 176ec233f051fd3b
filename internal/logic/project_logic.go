package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db  *gorm.DB
	cfg config.FundingConfig
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB, cfg config.FundingConfig) *ProjectLogic {
	return &ProjectLogic{db: db, cfg: cfg}
}

// Online 上线中的项目：start已过
func Online(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start <= ?", now)
	}
}

// Funding 募资中的项目：start已过且end未到
func Funding(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return Online(now)(db).Where("\"end\" >= ?", now)
	}
}

// CreateProject 创建项目
func (p *ProjectLogic) CreateProject(project *model.Project) error {
	if project.Currency == "" {
		project.Currency = p.cfg.DefaultCurrency
	}
	if err := p.validateProject(project); err != nil {
		return err
	}
	return p.db.Create(project).Error
}

// UpdateProject 更新项目，已有出资时货币与结束时间不可变
func (p *ProjectLogic) UpdateProject(project *model.Project) error {
	var stored model.Project
	if err := p.db.First(&stored, project.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	if err := p.validateProject(project); err != nil {
		return err
	}

	hasPledges, err := p.HasPledges(project.ID)
	if err != nil {
		return err
	}
	if hasPledges {
		if project.Currency != stored.Currency {
			return ErrCurrencyLocked
		}
		if !project.End.Equal(stored.End) {
			return ErrEndLocked
		}
	}

	return p.db.Save(project).Error
}

// GetProjects 获取项目列表，filter可选 online/funding
func (p *ProjectLogic) GetProjects(filter string, page, pageSize int) ([]model.Project, int64, error) {
	query := p.db.Model(&model.Project{})

	now := time.Now()
	switch filter {
	case "online":
		query = query.Scopes(Online(now))
	case "funding":
		query = query.Scopes(Funding(now))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("获取项目总数失败: %w", err)
	}

	var projects []model.Project
	offset := (page - 1) * pageSize
	if err := query.
		Order("position ASC, id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("获取项目列表失败: %w", err)
	}

	return projects, total, nil
}

// GetProject 获取项目详情
func (p *ProjectLogic) GetProject(id uint) (*model.Project, error) {
	var project model.Project
	if err := p.db.Preload("Categories").
		Preload("Rewards", func(db *gorm.DB) *gorm.DB { return db.Order("minimum ASC") }).
		First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}
	return &project, nil
}

// GetProjectBySlug 按slug获取项目
func (p *ProjectLogic) GetProjectBySlug(slug string) (*model.Project, error) {
	var project model.Project
	if err := p.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}
	return &project, nil
}

// HasPledges 项目是否已有出资
func (p *ProjectLogic) HasPledges(projectID uint) (bool, error) {
	var count int64
	if err := p.db.Model(&model.Pledge{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("统计出资记录失败: %w", err)
	}
	return count > 0, nil
}

// Achieved 已筹金额：状态达到已授权及以上的出资之和，没有则为0
func (p *ProjectLogic) Achieved(projectID uint) (int64, error) {
	var achieved int64
	if err := p.db.Model(&model.Pledge{}).
		Where("project_id = ? AND status >= ?", projectID, model.PledgeAuthorized).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&achieved).Error; err != nil {
		return 0, fmt.Errorf("统计已筹金额失败: %w", err)
	}
	return achieved, nil
}

// Percent 筹款完成百分比，向下取整。目标金额为0时返回0（校验层已拒绝零目标）。
func (p *ProjectLogic) Percent(project *model.Project) (int, error) {
	achieved, err := p.Achieved(project.ID)
	if err != nil {
		return 0, err
	}
	if project.Goal <= 0 {
		return 0, nil
	}
	return int(achieved * 100 / project.Goal), nil
}

// IsFinanced 是否已达标
func (p *ProjectLogic) IsFinanced(project *model.Project) (bool, error) {
	achieved, err := p.Achieved(project.ID)
	if err != nil {
		return false, err
	}
	return achieved >= project.Goal, nil
}

// IsActive 是否仍在募资期内
func (p *ProjectLogic) IsActive(project *model.Project) bool {
	return time.Now().Before(project.End)
}

// LessThan24Hours 距离结束是否不足24小时
func (p *ProjectLogic) LessThan24Hours(project *model.Project) bool {
	return time.Until(project.End) < 24*time.Hour
}

// AchievedDisplay 管理界面的只读展示串: "<金额> <货币> (<百分比>%)"
func (p *ProjectLogic) AchievedDisplay(project *model.Project) (string, error) {
	achieved, err := p.Achieved(project.ID)
	if err != nil {
		return "", err
	}
	percent, err := p.Percent(project)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s (%d%%)", achieved, project.Currency, percent), nil
}

// GetProjectStats 获取项目筹款统计
func (p *ProjectLogic) GetProjectStats(id uint) (map[string]interface{}, error) {
	project, err := p.GetProject(id)
	if err != nil {
		return nil, err
	}

	achieved, err := p.Achieved(project.ID)
	if err != nil {
		return nil, err
	}
	percent, err := p.Percent(project)
	if err != nil {
		return nil, err
	}

	var pledgeCount int64
	if err := p.db.Model(&model.Pledge{}).
		Where("project_id = ?", project.ID).
		Count(&pledgeCount).Error; err != nil {
		return nil, fmt.Errorf("统计出资记录失败: %w", err)
	}

	var backerCount int64
	if err := p.db.Model(&model.Pledge{}).
		Where("project_id = ? AND backer_id IS NOT NULL", project.ID).
		Distinct("backer_id").
		Count(&backerCount).Error; err != nil {
		return nil, fmt.Errorf("统计出资人数量失败: %w", err)
	}

	return map[string]interface{}{
		"project_id":   project.ID,
		"goal":         project.Goal,
		"currency":     project.Currency,
		"achieved":     achieved,
		"percent":      percent,
		"is_financed":  achieved >= project.Goal,
		"is_active":    p.IsActive(project),
		"pledge_count": pledgeCount,
		"backer_count": backerCount,
	}, nil
}

// DeleteProject 软删除项目
func (p *ProjectLogic) DeleteProject(id uint) error {
	result := p.db.Delete(&model.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// validateProject 验证项目数据
func (p *ProjectLogic) validateProject(project *model.Project) error {
	if project.Goal <= 0 {
		return ErrGoalNotPositive
	}
	if !p.cfg.HasCurrency(project.Currency) {
		return ErrUnknownCurrency
	}
	if project.Start.After(project.End) {
		return ErrStartAfterEnd
	}
	maxDuration := time.Duration(p.cfg.MaxDurationDays) * 24 * time.Hour
	if project.End.Sub(project.Start) > maxDuration {
		return ErrDurationTooLong
	}
	return nil
}
