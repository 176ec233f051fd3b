package logic

import (
	"errors"
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaidNotifier 出资支付完成后的通知回调（比如致谢邮件）
type PaidNotifier interface {
	NotifyPaid(pledge *model.Pledge)
}

// PledgeLogic 出资业务逻辑
type PledgeLogic struct {
	db       *gorm.DB
	notifier PaidNotifier
}

// NewPledgeLogic 创建出资业务逻辑，notifier可以为nil
func NewPledgeLogic(db *gorm.DB, notifier PaidNotifier) *PledgeLogic {
	return &PledgeLogic{db: db, notifier: notifier}
}

// CreatePledge 创建出资。选了限量回报时，校验可用量和插入在同一事务里
// 完成，回报行加锁，避免并发下超卖。
func (l *PledgeLogic) CreatePledge(pledge *model.Pledge) error {
	if pledge.Amount <= 0 {
		return ErrAmountNotPositive
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var project model.Project
		if err := tx.First(&project, pledge.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		if pledge.RewardID != nil {
			locked := tx
			if tx.Dialector.Name() == "postgres" {
				locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var reward model.Reward
			if err := locked.First(&reward, *pledge.RewardID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrRewardNotFound
				}
				return err
			}
			if reward.ProjectID != project.ID {
				return ErrRewardWrongProject
			}
			if pledge.Amount < reward.Minimum {
				return ErrRewardMinimum
			}
			if reward.Limited() {
				var awarded int64
				if err := tx.Model(&model.Pledge{}).
					Where("reward_id = ? AND status >= ?", reward.ID, model.PledgeAuthorized).
					Count(&awarded).Error; err != nil {
					return fmt.Errorf("统计回报授予数失败: %w", err)
				}
				if int64(*reward.Quantity)-awarded <= 0 {
					return ErrRewardExhausted
				}
			}
		}

		if pledge.Status == 0 {
			pledge.Status = model.PledgeUnauthorized
		}

		// 货币由BeforeSave钩子统一纠正为项目货币
		return tx.Create(pledge).Error
	})
}

// UpdateStatus 推进出资状态，只允许单调递增。到达已支付时触发通知回调。
func (l *PledgeLogic) UpdateStatus(id uint, status model.PledgeStatus) (*model.Pledge, error) {
	switch status {
	case model.PledgeUnauthorized, model.PledgeAuthorized, model.PledgePaid:
	default:
		return nil, ErrInvalidStatus
	}

	var pledge model.Pledge
	if err := l.db.Preload("Backer.User").First(&pledge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPledgeNotFound
		}
		return nil, err
	}

	if status < pledge.Status {
		return nil, ErrStatusRegression
	}

	paidNow := status == model.PledgePaid && pledge.Status != model.PledgePaid
	pledge.Status = status
	if err := l.db.Save(&pledge).Error; err != nil {
		return nil, err
	}

	if paidNow && l.notifier != nil {
		l.notifier.NotifyPaid(&pledge)
	}

	return &pledge, nil
}

// GetPledge 获取出资详情
func (l *PledgeLogic) GetPledge(id uint) (*model.Pledge, error) {
	var pledge model.Pledge
	if err := l.db.Preload("Backer.User").Preload("Reward").First(&pledge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPledgeNotFound
		}
		return nil, err
	}
	return &pledge, nil
}

// GetProjectPledges 获取项目的出资记录
func (l *PledgeLogic) GetProjectPledges(projectID uint, page, pageSize int) ([]model.Pledge, int64, error) {
	var total int64
	if err := l.db.Model(&model.Pledge{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计出资记录失败: %w", err)
	}

	var pledges []model.Pledge
	offset := (page - 1) * pageSize
	if err := l.db.Where("project_id = ?", projectID).
		Preload("Backer.User").
		Preload("Reward").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&pledges).Error; err != nil {
		return nil, 0, fmt.Errorf("获取出资记录失败: %w", err)
	}

	return pledges, total, nil
}
