package handler

import (
	"net/http"
	"strconv"

	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BackerHandler struct {
	backerLogic *logic.BackerLogic
}

func NewBackerHandler(db *gorm.DB) *BackerHandler {
	return &BackerHandler{
		backerLogic: logic.NewBackerLogic(db),
	}
}

// CreateBacker 创建独立出资人
func (h *BackerHandler) CreateBacker(c *gin.Context) {
	var backer model.Backer
	if err := c.ShouldBindJSON(&backer); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.backerLogic.CreateBacker(&backer); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "出资人创建成功", NewBackerView(&backer))
}

// GetOrCreateForUser 获取或创建账号对应的出资人
func (h *BackerHandler) GetOrCreateForUser(c *gin.Context) {
	userID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的用户ID")
		return
	}

	backer, err := h.backerLogic.GetOrCreateForUser(userID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"backer": NewBackerView(backer)})
}

// GetBacker 获取出资人
func (h *BackerHandler) GetBacker(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的出资人ID")
		return
	}

	backer, err := h.backerLogic.GetBacker(id)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"backer": NewBackerView(backer)})
}

// GetBackers 获取出资人列表
func (h *BackerHandler) GetBackers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	backers, total, err := h.backerLogic.GetBackers(page, pageSize)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	views := make([]BackerView, 0, len(backers))
	for i := range backers {
		views = append(views, NewBackerView(&backers[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"backers":   views,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
