package logic

import (
	"errors"
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryLogic 分类业务逻辑
type CategoryLogic struct {
	db *gorm.DB
}

// NewCategoryLogic 创建分类业务逻辑
func NewCategoryLogic(db *gorm.DB) *CategoryLogic {
	return &CategoryLogic{db: db}
}

// CreateCategory 创建分类，slug唯一由数据库约束保证
func (c *CategoryLogic) CreateCategory(category *model.Category) error {
	return c.db.Create(category).Error
}

// UpdateCategory 更新分类
func (c *CategoryLogic) UpdateCategory(category *model.Category) error {
	var stored model.Category
	if err := c.db.First(&stored, category.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return c.db.Save(category).Error
}

// GetCategories 获取分类列表，按手工排序键
func (c *CategoryLogic) GetCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := c.db.Order("ordering ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("获取分类列表失败: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug 按slug获取分类
func (c *CategoryLogic) GetCategoryBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := c.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ProjectCount 分类下的项目数
func (c *CategoryLogic) ProjectCount(categoryID uint) (int64, error) {
	var count int64
	if err := c.db.Table("project_categories").
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计分类项目数失败: %w", err)
	}
	return count, nil
}

// ResolveTranslation 按语言解析分类标题。没有匹配的翻译行时原样返回。
func (c *CategoryLogic) ResolveTranslation(category *model.Category, language string) *model.Category {
	var translation model.CategoryTranslation
	err := c.db.Where("category_id = ? AND language = ?", category.ID, language).
		First(&translation).Error
	if err != nil {
		return category
	}

	translated := *category
	translated.Title = translation.Title
	return &translated
}

// UpsertTranslation 写入或更新分类翻译
func (c *CategoryLogic) UpsertTranslation(translation *model.CategoryTranslation) error {
	var category model.Category
	if err := c.db.First(&category, translation.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	return c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
	}).Create(translation).Error
}
