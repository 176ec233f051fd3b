package model

import "time"

// MailAction 触发邮件的生命周期动作
type MailAction string

const (
	MailActionThankYou MailAction = "thank_you" // 出资支付完成后的致谢
)

// MailActions 当前支持的动作集合
var MailActions = []MailAction{MailActionThankYou}

// MailTemplate 项目级邮件模板，(project, action) 唯一
type MailTemplate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint       `json:"project_id" gorm:"not null;uniqueIndex:idx_mail_project_action"`
	Action    MailAction `json:"action" gorm:"size:30;not null;uniqueIndex:idx_mail_project_action"`

	Subject string `json:"subject" gorm:"size:200;not null"`
	Body    string `json:"body" gorm:"type:text;not null"`
}
