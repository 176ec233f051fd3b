package model

import (
	"fmt"
	"time"
)

// Category 项目分类
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string `json:"title" gorm:"size:100;not null" binding:"required"`
	Slug     string `json:"slug" gorm:"size:100;uniqueIndex;not null" binding:"required"`
	Ordering int    `json:"ordering" gorm:"default:0"` // 手工排序键

	Projects []Project `json:"-" gorm:"many2many:project_categories"`
}

// AbsoluteURL 分类列表页地址
func (c *Category) AbsoluteURL() string {
	return fmt.Sprintf("/categories/%s/", c.Slug)
}

// CategoryTranslation 分类标题的翻译行
type CategoryTranslation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CategoryID uint   `json:"category_id" gorm:"not null;uniqueIndex:idx_category_language"`
	Language   string `json:"language" gorm:"size:10;not null;uniqueIndex:idx_category_language"`
	Title      string `json:"title" gorm:"size:100;not null"`
}
