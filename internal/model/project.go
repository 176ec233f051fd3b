package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Project 众筹项目模型
type Project struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// 基本信息
	Title    string `json:"title" gorm:"size:100;not null" binding:"required"`
	Slug     string `json:"slug" gorm:"size:100;uniqueIndex;not null" binding:"required"`
	AuthorID *uint  `json:"author_id"`
	Author   *User  `json:"author,omitempty"`

	// 众筹信息
	Goal     int64  `json:"goal" gorm:"not null" binding:"required"`
	Currency string `json:"currency" gorm:"size:3"`

	// 众筹窗口
	Start time.Time `json:"start" gorm:"not null"`
	End   time.Time `json:"end" gorm:"not null"`

	// 展示信息
	Position    int    `json:"position" gorm:"default:0"`
	TeaserImage string `json:"teaser_image"`
	TeaserText  string `json:"teaser_text" gorm:"type:text"`

	// 关联
	Categories []Category      `json:"categories,omitempty" gorm:"many2many:project_categories"`
	Pledges    []Pledge        `json:"pledges,omitempty" gorm:"foreignKey:ProjectID"`
	Rewards    []Reward        `json:"rewards,omitempty" gorm:"foreignKey:ProjectID"`
	Updates    []ProjectUpdate `json:"updates,omitempty" gorm:"foreignKey:ProjectID"`
}

// MediaPath 项目媒体文件存储路径，规则固定为 projects/<slug>/<filename>（小写）
func MediaPath(slug, filename string) string {
	return strings.ToLower(fmt.Sprintf("projects/%s/%s", slug, filename))
}

// TeaserImagePath 预告图片的存储路径
func (p *Project) TeaserImagePath(filename string) string {
	return MediaPath(p.Slug, filename)
}

// AbsoluteURL 项目详情页地址
func (p *Project) AbsoluteURL() string {
	return fmt.Sprintf("/projects/%s/", p.Slug)
}

// GoalDisplay 目标金额展示
func (p *Project) GoalDisplay() string {
	return fmt.Sprintf("%d %s", p.Goal, p.Currency)
}
