package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UpdateStatus 项目动态状态
type UpdateStatus string

const (
	UpdateStatusDraft     UpdateStatus = "draft"     // 草稿
	UpdateStatusPublished UpdateStatus = "published" // 已发布
)

// ProjectUpdate 项目动态
type ProjectUpdate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint     `json:"project_id" gorm:"not null;index"`
	Project   *Project `json:"-"`

	Title      string       `json:"title" gorm:"size:100;not null" binding:"required"`
	Body       string       `json:"body" gorm:"type:text"`
	Status     UpdateStatus `json:"status" gorm:"size:20;default:'draft'"`
	Image      string       `json:"image"`
	Attachment string       `json:"attachment"`
	MailsSent  bool         `json:"mails_sent"` // 通知邮件是否已发出，由外部投递方标记

	// 已发布动态中的序号，按需计算并在本次读取内缓存
	number int `gorm:"-"`
}

// Number 在同项目已发布动态中的1-based序号，按创建时间从早到晚排。
// 草稿返回0。结果在实例上缓存，同一次读取不会重复查询。
func (u *ProjectUpdate) Number(db *gorm.DB) (int, error) {
	if u.Status != UpdateStatusPublished {
		return 0, nil
	}
	if u.number > 0 {
		return u.number, nil
	}

	var position int64
	err := db.Model(&ProjectUpdate{}).
		Where("project_id = ? AND status = ?", u.ProjectID, UpdateStatusPublished).
		Where("created_at < ? OR (created_at = ? AND id <= ?)", u.CreatedAt, u.CreatedAt, u.ID).
		Count(&position).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count published updates: %w", err)
	}

	u.number = int(position)
	return u.number, nil
}

// ImagePath 动态图片的存储路径
func (u *ProjectUpdate) ImagePath(projectSlug, filename string) string {
	return MediaPath(projectSlug, filename)
}

// AbsoluteURL 动态详情页地址，包含所属项目的slug
func (u *ProjectUpdate) AbsoluteURL(projectSlug string) string {
	return fmt.Sprintf("/projects/%s/updates/%d/", projectSlug, u.ID)
}
