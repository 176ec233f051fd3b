package logic

import (
	"errors"
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
)

// BackerLogic 出资人业务逻辑
type BackerLogic struct {
	db *gorm.DB
}

// NewBackerLogic 创建出资人业务逻辑
func NewBackerLogic(db *gorm.DB) *BackerLogic {
	return &BackerLogic{db: db}
}

// GetOrCreateForUser 获取账号对应的出资人，没有则创建。
// 唯一索引保证每个账号至多一个出资人。
func (b *BackerLogic) GetOrCreateForUser(userID uint) (*model.Backer, error) {
	var backer model.Backer
	err := b.db.Preload("User").Where("user_id = ?", userID).First(&backer).Error
	if err == nil {
		return &backer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询出资人失败: %w", err)
	}

	backer = model.Backer{UserID: &userID}
	if err := b.db.Create(&backer).Error; err != nil {
		return nil, fmt.Errorf("创建出资人失败: %w", err)
	}
	if err := b.db.Preload("User").First(&backer, backer.ID).Error; err != nil {
		return nil, err
	}
	return &backer, nil
}

// CreateBacker 创建独立出资人（不关联账号）
func (b *BackerLogic) CreateBacker(backer *model.Backer) error {
	if backer.UserID == nil && backer.Email == "" {
		return ErrBackerNoContact
	}
	return b.db.Create(backer).Error
}

// GetBacker 获取出资人
func (b *BackerLogic) GetBacker(id uint) (*model.Backer, error) {
	var backer model.Backer
	if err := b.db.Preload("User").First(&backer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBackerNotFound
		}
		return nil, err
	}
	return &backer, nil
}

// GetBackers 获取出资人列表
func (b *BackerLogic) GetBackers(page, pageSize int) ([]model.Backer, int64, error) {
	var total int64
	if err := b.db.Model(&model.Backer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var backers []model.Backer
	offset := (page - 1) * pageSize
	if err := b.db.Preload("User").
		Order("id ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&backers).Error; err != nil {
		return nil, 0, fmt.Errorf("获取出资人列表失败: %w", err)
	}

	return backers, total, nil
}
