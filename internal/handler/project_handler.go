package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(db *gorm.DB, cfg config.FundingConfig) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db, cfg),
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.projectLogic.CreateProject(&project); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", project)
}

// GetProjects 获取项目列表，?filter=online|funding
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	filter := c.Query("filter")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	projects, total, err := h.projectLogic.GetProjects(filter, page, pageSize)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	items := make([]ProjectListItem, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		items = append(items, ProjectListItem{
			ID:    p.ID,
			Title: p.Title,
			Slug:  p.Slug,
			Goal:  p.Goal,
			URL:   p.AbsoluteURL(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":  items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProject 获取项目详情，附带实时筹款状态
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	achieved, err := h.projectLogic.Achieved(project.ID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}
	percent, err := h.projectLogic.Percent(project)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}
	display, err := h.projectLogic.AchievedDisplay(project)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	view := ProjectView{
		Project:         *project,
		URL:             project.AbsoluteURL(),
		Achieved:        achieved,
		Percent:         percent,
		AchievedDisplay: display,
		IsFinanced:      achieved >= project.Goal,
		IsActive:        h.projectLogic.IsActive(project),
		LessThan24Hours: h.projectLogic.LessThan24Hours(project),
	}

	c.JSON(http.StatusOK, gin.H{"project": view})
}

// UpdateProject 更新项目，已有出资时货币和结束时间被锁定
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	var updateData struct {
		Title       *string    `json:"title"`
		Slug        *string    `json:"slug"`
		Goal        *int64     `json:"goal"`
		Currency    *string    `json:"currency"`
		Start       *time.Time `json:"start"`
		End         *time.Time `json:"end"`
		Position    *int       `json:"position"`
		TeaserImage *string    `json:"teaser_image"`
		TeaserText  *string    `json:"teaser_text"`
	}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if updateData.Title != nil {
		project.Title = *updateData.Title
	}
	if updateData.Slug != nil {
		project.Slug = *updateData.Slug
	}
	if updateData.Goal != nil {
		project.Goal = *updateData.Goal
	}
	if updateData.Currency != nil {
		project.Currency = *updateData.Currency
	}
	if updateData.Start != nil {
		project.Start = *updateData.Start
	}
	if updateData.End != nil {
		project.End = *updateData.End
	}
	if updateData.Position != nil {
		project.Position = *updateData.Position
	}
	if updateData.TeaserImage != nil {
		project.TeaserImage = project.TeaserImagePath(*updateData.TeaserImage)
	}
	if updateData.TeaserText != nil {
		project.TeaserText = *updateData.TeaserText
	}

	if err := h.projectLogic.UpdateProject(project); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "项目更新成功", project)
}

// DeleteProject 软删除项目
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := h.projectLogic.DeleteProject(id); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "项目已删除", nil)
}

// GetProjectStats 获取项目筹款统计
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	stats, err := h.projectLogic.GetProjectStats(id)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}

func (h *ProjectHandler) loadProject(c *gin.Context) (*model.Project, bool) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return nil, false
	}

	project, err := h.projectLogic.GetProject(id)
	if err != nil {
		LogicErrorResponse(c, err)
		return nil, false
	}
	return project, true
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
