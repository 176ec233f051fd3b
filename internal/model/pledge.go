package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PledgeStatus 出资状态，数值随承诺力度递增
type PledgeStatus int

const (
	PledgeUnauthorized PledgeStatus = 10 // 未授权
	PledgeAuthorized   PledgeStatus = 20 // 已授权
	PledgePaid         PledgeStatus = 30 // 已支付
)

// Pledge 出资记录模型
type Pledge struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint     `json:"project_id" gorm:"not null;index"`
	Project   *Project `json:"-"`
	BackerID  *uint    `json:"backer_id"`
	Backer    *Backer  `json:"backer,omitempty"`
	RewardID  *uint    `json:"reward_id" gorm:"index"`
	Reward    *Reward  `json:"reward,omitempty"`

	Amount      int64        `json:"amount" gorm:"not null" binding:"required"`
	Currency    string       `json:"currency" gorm:"size:3"`
	Anonymously bool         `json:"anonymously"`
	Status      PledgeStatus `json:"status" gorm:"default:10"`
}

// BeforeSave 货币始终跟随项目货币。这是静默纠正而不是校验，
// 无论调用方传了什么值都会被覆盖。
func (p *Pledge) BeforeSave(tx *gorm.DB) error {
	var project Project
	if err := tx.Select("currency").First(&project, p.ProjectID).Error; err != nil {
		return fmt.Errorf("failed to resolve project currency: %w", err)
	}
	p.Currency = project.Currency
	return nil
}

func (p *Pledge) String() string {
	return fmt.Sprintf("Pledge of %d %s to project %d", p.Amount, p.Currency, p.ProjectID)
}
