package model

import "time"

// Reward 回报档位模型
type Reward struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint `json:"project_id" gorm:"not null;index"`

	Title       string `json:"title" gorm:"size:100;not null" binding:"required"`
	Minimum     int64  `json:"minimum" gorm:"not null" binding:"required"` // 达到多少金额才能获得该回报
	Description string `json:"description" gorm:"type:text"`
	Quantity    *int   `json:"quantity"` // 可给出的份数，空表示不限量

	Pledges []Pledge `json:"-" gorm:"foreignKey:RewardID"`
}

// Limited 是否限量
func (r *Reward) Limited() bool {
	return r.Quantity != nil
}
