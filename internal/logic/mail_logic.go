package logic

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/feinheit/zipfelchappe/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MailLogic 邮件模板业务逻辑。模板按(项目, 动作)唯一。
type MailLogic struct {
	db *gorm.DB
}

// NewMailLogic 创建邮件模板业务逻辑
func NewMailLogic(db *gorm.DB) *MailLogic {
	return &MailLogic{db: db}
}

// UpsertTemplate 写入或更新项目的邮件模板
func (m *MailLogic) UpsertTemplate(tmpl *model.MailTemplate) error {
	if !validMailAction(tmpl.Action) {
		return ErrUnknownMailAction
	}

	var project model.Project
	if err := m.db.First(&project, tmpl.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "action"}},
		DoUpdates: clause.AssignmentColumns([]string{"subject", "body", "updated_at"}),
	}).Create(tmpl).Error
}

// GetTemplate 获取项目某个动作的模板
func (m *MailLogic) GetTemplate(projectID uint, action model.MailAction) (*model.MailTemplate, error) {
	var tmpl model.MailTemplate
	if err := m.db.Where("project_id = ? AND action = ?", projectID, action).
		First(&tmpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}

// GetProjectTemplates 获取项目的全部模板
func (m *MailLogic) GetProjectTemplates(projectID uint) ([]model.MailTemplate, error) {
	var templates []model.MailTemplate
	if err := m.db.Where("project_id = ?", projectID).
		Order("action ASC").
		Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("获取邮件模板失败: %w", err)
	}
	return templates, nil
}

// MailData 模板渲染数据
type MailData struct {
	BackerName string
	Project    string
	Amount     int64
	Currency   string
}

// RenderThankYou 渲染致谢邮件。项目没有配置模板时返回ErrTemplateNotFound，
// 调用方可据此跳过发送。
func (m *MailLogic) RenderThankYou(pledge *model.Pledge) (subject, body string, err error) {
	var project model.Project
	if err := m.db.First(&project, pledge.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrProjectNotFound
		}
		return "", "", err
	}

	tmpl, err := m.GetTemplate(project.ID, model.MailActionThankYou)
	if err != nil {
		return "", "", err
	}

	backerName := ""
	if pledge.Backer != nil {
		backerName = pledge.Backer.Identity().FullName()
	}

	data := MailData{
		BackerName: backerName,
		Project:    project.Title,
		Amount:     pledge.Amount,
		Currency:   pledge.Currency,
	}

	subject, err = renderTemplate("subject", tmpl.Subject, data)
	if err != nil {
		return "", "", err
	}
	body, err = renderTemplate("body", tmpl.Body, data)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func renderTemplate(name, text string, data MailData) (string, error) {
	t, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("解析邮件模板失败: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

func validMailAction(action model.MailAction) bool {
	for _, a := range model.MailActions {
		if a == action {
			return true
		}
	}
	return false
}
