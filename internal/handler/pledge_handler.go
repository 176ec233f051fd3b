package handler

import (
	"net/http"
	"strconv"

	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PledgeHandler struct {
	pledgeLogic *logic.PledgeLogic
}

func NewPledgeHandler(db *gorm.DB, notifier logic.PaidNotifier) *PledgeHandler {
	return &PledgeHandler{
		pledgeLogic: logic.NewPledgeLogic(db, notifier),
	}
}

// CreatePledge 对项目出资
func (h *PledgeHandler) CreatePledge(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var pledge model.Pledge
	if err := c.ShouldBindJSON(&pledge); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	pledge.ProjectID = projectID

	if err := h.pledgeLogic.CreatePledge(&pledge); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "出资成功", pledge)
}

// GetProjectPledges 获取项目出资记录
func (h *PledgeHandler) GetProjectPledges(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	pledges, total, err := h.pledgeLogic.GetProjectPledges(projectID, page, pageSize)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	views := make([]PledgeView, 0, len(pledges))
	for i := range pledges {
		views = append(views, NewPledgeView(&pledges[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"pledges":   views,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdatePledgeStatus 推进出资状态，由支付方回调触发
func (h *PledgeHandler) UpdatePledgeStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的出资ID")
		return
	}

	var body struct {
		Status model.PledgeStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pledge, err := h.pledgeLogic.UpdateStatus(id, body.Status)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "出资状态已更新", NewPledgeView(pledge))
}

// GetPledge 获取出资详情
func (h *PledgeHandler) GetPledge(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的出资ID")
		return
	}

	pledge, err := h.pledgeLogic.GetPledge(id)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pledge": NewPledgeView(pledge)})
}
