package logic

import (
	"errors"
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
)

// RewardLogic 回报业务逻辑。可用量从当前出资记录实时算出，不落库。
type RewardLogic struct {
	db *gorm.DB
}

// NewRewardLogic 创建回报业务逻辑
func NewRewardLogic(db *gorm.DB) *RewardLogic {
	return &RewardLogic{db: db}
}

// Reserved 引用该回报的全部出资数，不分状态
func (r *RewardLogic) Reserved(rewardID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Pledge{}).
		Where("reward_id = ?", rewardID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计回报预订数失败: %w", err)
	}
	return count, nil
}

// Awarded 已承诺给出的份数：状态达到已授权及以上的出资数
func (r *RewardLogic) Awarded(rewardID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Pledge{}).
		Where("reward_id = ? AND status >= ?", rewardID, model.PledgeAuthorized).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计回报授予数失败: %w", err)
	}
	return count, nil
}

// Available 剩余份数。不限量的回报没有意义，调用方应先判断IsAvailable。
func (r *RewardLogic) Available(reward *model.Reward) (int64, error) {
	awarded, err := r.Awarded(reward.ID)
	if err != nil {
		return 0, err
	}
	var quantity int64
	if reward.Limited() {
		quantity = int64(*reward.Quantity)
	}
	return quantity - awarded, nil
}

// IsAvailable 是否还可选择。不限量恒为可选。
func (r *RewardLogic) IsAvailable(reward *model.Reward) (bool, error) {
	if !reward.Limited() {
		return true, nil
	}
	available, err := r.Available(reward)
	if err != nil {
		return false, err
	}
	return available > 0, nil
}

// CreateReward 为项目创建回报。新回报还不可能有出资，不做份数下限校验。
func (r *RewardLogic) CreateReward(projectID uint, reward *model.Reward) error {
	var project model.Project
	if err := r.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	reward.ProjectID = projectID
	return r.db.Create(reward).Error
}

// UpdateReward 更新回报，份数不能压到已承诺的数量以下
func (r *RewardLogic) UpdateReward(reward *model.Reward) error {
	var stored model.Reward
	if err := r.db.First(&stored, reward.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRewardNotFound
		}
		return err
	}

	if reward.Limited() {
		awarded, err := r.Awarded(reward.ID)
		if err != nil {
			return err
		}
		if int64(*reward.Quantity) < awarded {
			return ErrQuantityBelowAwarded
		}
	}

	reward.ProjectID = stored.ProjectID
	return r.db.Save(reward).Error
}

// DeleteReward 删除回报
func (r *RewardLogic) DeleteReward(id uint) error {
	result := r.db.Delete(&model.Reward{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRewardNotFound
	}
	return nil
}

// GetProjectRewards 获取项目的回报列表，按最低金额升序
func (r *RewardLogic) GetProjectRewards(projectID uint) ([]model.Reward, error) {
	var rewards []model.Reward
	if err := r.db.Where("project_id = ?", projectID).
		Order("minimum ASC").
		Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("获取回报列表失败: %w", err)
	}
	return rewards, nil
}
