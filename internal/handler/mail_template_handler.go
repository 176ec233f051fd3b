package handler

import (
	"net/http"

	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MailTemplateHandler struct {
	mailLogic *logic.MailLogic
}

func NewMailTemplateHandler(db *gorm.DB) *MailTemplateHandler {
	return &MailTemplateHandler{
		mailLogic: logic.NewMailLogic(db),
	}
}

// UpsertTemplate 写入或更新项目的邮件模板
func (h *MailTemplateHandler) UpsertTemplate(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var body struct {
		Subject string `json:"subject" binding:"required"`
		Body    string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	tmpl := model.MailTemplate{
		ProjectID: projectID,
		Action:    model.MailAction(c.Param("action")),
		Subject:   body.Subject,
		Body:      body.Body,
	}
	if err := h.mailLogic.UpsertTemplate(&tmpl); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "邮件模板已保存", tmpl)
}

// GetProjectTemplates 获取项目的邮件模板
func (h *MailTemplateHandler) GetProjectTemplates(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	templates, err := h.mailLogic.GetProjectTemplates(projectID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}
