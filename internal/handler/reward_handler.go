package handler

import (
	"net/http"

	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RewardHandler struct {
	rewardLogic *logic.RewardLogic
}

func NewRewardHandler(db *gorm.DB) *RewardHandler {
	return &RewardHandler{
		rewardLogic: logic.NewRewardLogic(db),
	}
}

// CreateReward 为项目创建回报
func (h *RewardHandler) CreateReward(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var reward model.Reward
	if err := c.ShouldBindJSON(&reward); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.rewardLogic.CreateReward(projectID, &reward); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "回报创建成功", reward)
}

// GetProjectRewards 获取项目回报列表，附带实时可用量
func (h *RewardHandler) GetProjectRewards(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	rewards, err := h.rewardLogic.GetProjectRewards(projectID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	views := make([]RewardView, 0, len(rewards))
	for i := range rewards {
		view, err := h.buildRewardView(&rewards[i])
		if err != nil {
			LogicErrorResponse(c, err)
			return
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"rewards": views})
}

// UpdateReward 更新回报
func (h *RewardHandler) UpdateReward(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的回报ID")
		return
	}

	var reward model.Reward
	if err := c.ShouldBindJSON(&reward); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	reward.ID = id

	if err := h.rewardLogic.UpdateReward(&reward); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "回报更新成功", reward)
}

// DeleteReward 删除回报
func (h *RewardHandler) DeleteReward(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的回报ID")
		return
	}

	if err := h.rewardLogic.DeleteReward(id); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "回报已删除", nil)
}

func (h *RewardHandler) buildRewardView(reward *model.Reward) (RewardView, error) {
	reserved, err := h.rewardLogic.Reserved(reward.ID)
	if err != nil {
		return RewardView{}, err
	}
	awarded, err := h.rewardLogic.Awarded(reward.ID)
	if err != nil {
		return RewardView{}, err
	}
	available, err := h.rewardLogic.Available(reward)
	if err != nil {
		return RewardView{}, err
	}
	isAvailable, err := h.rewardLogic.IsAvailable(reward)
	if err != nil {
		return RewardView{}, err
	}

	return RewardView{
		Reward:      *reward,
		Reserved:    reserved,
		Awarded:     awarded,
		Available:   available,
		IsAvailable: isAvailable,
	}, nil
}
