package logic

import (
	"errors"
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
)

// UpdateLogic 项目动态业务逻辑
type UpdateLogic struct {
	db *gorm.DB
}

// NewUpdateLogic 创建项目动态业务逻辑
func NewUpdateLogic(db *gorm.DB) *UpdateLogic {
	return &UpdateLogic{db: db}
}

// CreateUpdate 创建动态，默认草稿状态
func (u *UpdateLogic) CreateUpdate(update *model.ProjectUpdate) error {
	var project model.Project
	if err := u.db.First(&project, update.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	if update.Status == "" {
		update.Status = model.UpdateStatusDraft
	}
	return u.db.Create(update).Error
}

// PublishUpdate 发布动态
func (u *UpdateLogic) PublishUpdate(id uint) (*model.ProjectUpdate, error) {
	update, err := u.GetUpdate(id)
	if err != nil {
		return nil, err
	}

	update.Status = model.UpdateStatusPublished
	if err := u.db.Save(update).Error; err != nil {
		return nil, err
	}
	return update, nil
}

// MarkMailsSent 标记通知邮件已发出，由外部投递方调用
func (u *UpdateLogic) MarkMailsSent(id uint) error {
	result := u.db.Model(&model.ProjectUpdate{}).
		Where("id = ?", id).
		Update("mails_sent", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUpdateNotFound
	}
	return nil
}

// GetUpdate 获取动态
func (u *UpdateLogic) GetUpdate(id uint) (*model.ProjectUpdate, error) {
	var update model.ProjectUpdate
	if err := u.db.First(&update, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateNotFound
		}
		return nil, err
	}
	return &update, nil
}

// Number 动态在已发布动态中的序号
func (u *UpdateLogic) Number(update *model.ProjectUpdate) (int, error) {
	return update.Number(u.db)
}

// GetProjectUpdates 获取项目动态，publishedOnly时只取已发布的，按创建时间从早到晚
func (u *UpdateLogic) GetProjectUpdates(projectID uint, publishedOnly bool) ([]model.ProjectUpdate, error) {
	query := u.db.Where("project_id = ?", projectID)
	if publishedOnly {
		query = query.Where("status = ?", model.UpdateStatusPublished)
	}

	var updates []model.ProjectUpdate
	if err := query.Order("created_at ASC, id ASC").Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("获取项目动态失败: %w", err)
	}
	return updates, nil
}
