package handler

import (
	"net/http"

	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateHandler struct {
	updateLogic *logic.UpdateLogic
	db          *gorm.DB
}

func NewUpdateHandler(db *gorm.DB) *UpdateHandler {
	return &UpdateHandler{
		updateLogic: logic.NewUpdateLogic(db),
		db:          db,
	}
}

// CreateUpdate 为项目创建动态
func (h *UpdateHandler) CreateUpdate(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var update model.ProjectUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	update.ProjectID = projectID

	if err := h.updateLogic.CreateUpdate(&update); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "动态创建成功", update)
}

// GetProjectUpdates 获取项目动态列表，?published=true只取已发布的
func (h *UpdateHandler) GetProjectUpdates(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	publishedOnly := c.Query("published") == "true"
	updates, err := h.updateLogic.GetProjectUpdates(projectID, publishedOnly)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	slug, err := h.projectSlug(projectID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	views := make([]UpdateView, 0, len(updates))
	for i := range updates {
		update := &updates[i]
		number, err := h.updateLogic.Number(update)
		if err != nil {
			LogicErrorResponse(c, err)
			return
		}
		views = append(views, UpdateView{
			ProjectUpdate: *update,
			Number:        number,
			URL:           update.AbsoluteURL(slug),
		})
	}

	c.JSON(http.StatusOK, gin.H{"updates": views})
}

// PublishUpdate 发布动态
func (h *UpdateHandler) PublishUpdate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的动态ID")
		return
	}

	update, err := h.updateLogic.PublishUpdate(id)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "动态已发布", update)
}

// MarkMailsSent 标记动态的通知邮件已发出
func (h *UpdateHandler) MarkMailsSent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的动态ID")
		return
	}

	if err := h.updateLogic.MarkMailsSent(id); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "已标记邮件发送", nil)
}

func (h *UpdateHandler) projectSlug(projectID uint) (string, error) {
	var project model.Project
	if err := h.db.Select("slug").First(&project, projectID).Error; err != nil {
		return "", logic.ErrProjectNotFound
	}
	return project.Slug, nil
}
