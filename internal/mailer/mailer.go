package mailer

import (
	"errors"
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/logger"
	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// Message 一封待发邮件
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}

// Sender 邮件投递接口。实际投递是外部协作方的职责，
// 这里只约定交接点。
type Sender interface {
	Send(msg Message) error
}

// LogSender 把邮件写进日志的投递实现，用于开发环境和未接入投递方时
type LogSender struct{}

func (LogSender) Send(msg Message) error {
	logger.Info("MAIL to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}

// Dispatcher 致谢邮件分发器。出资到达已支付后渲染模板并提交协程池发送。
type Dispatcher struct {
	mailLogic *logic.MailLogic
	sender    Sender
	pool      *ants.Pool
	from      string
	enabled   bool
}

// NewDispatcher 创建分发器
func NewDispatcher(db *gorm.DB, cfg config.MailConfig, sender Sender) (*Dispatcher, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail pool: %w", err)
	}

	return &Dispatcher{
		mailLogic: logic.NewMailLogic(db),
		sender:    sender,
		pool:      pool,
		from:      cfg.From,
		enabled:   cfg.Enabled,
	}, nil
}

// NotifyPaid 实现logic.PaidNotifier，出资支付完成时触发
func (d *Dispatcher) NotifyPaid(pledge *model.Pledge) {
	if !d.enabled {
		return
	}
	if pledge.Backer == nil {
		logger.Debug("Pledge %d has no backer, skipping thank you mail", pledge.ID)
		return
	}

	to := pledge.Backer.Identity().Email()
	if to == "" {
		logger.Debug("Backer %d has no email, skipping thank you mail", pledge.Backer.ID)
		return
	}

	if err := d.pool.Submit(func() { d.sendThankYou(pledge, to) }); err != nil {
		logger.Error("Failed to submit mail task: %v", err)
	}
}

func (d *Dispatcher) sendThankYou(pledge *model.Pledge, to string) {
	subject, body, err := d.mailLogic.RenderThankYou(pledge)
	if err != nil {
		if errors.Is(err, logic.ErrTemplateNotFound) {
			logger.Debug("Project %d has no thank you template", pledge.ProjectID)
			return
		}
		logger.Error("Failed to render thank you mail for pledge %d: %v", pledge.ID, err)
		return
	}

	msg := Message{To: to, From: d.from, Subject: subject, Body: body}
	if err := d.sender.Send(msg); err != nil {
		logger.Error("Failed to send thank you mail for pledge %d: %v", pledge.ID, err)
		return
	}
	logger.Info("Sent thank you mail for pledge %d to %s", pledge.ID, to)
}

// Release 释放协程池
func (d *Dispatcher) Release() {
	d.pool.Release()
}
