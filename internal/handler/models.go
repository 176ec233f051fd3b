package handler

import (
	"github.com/feinheit/zipfelchappe/internal/model"
)

// ProjectView 项目详情视图
type ProjectView struct {
	model.Project
	URL             string `json:"url"`
	Achieved        int64  `json:"achieved"`
	Percent         int    `json:"percent"`
	AchievedDisplay string `json:"achieved_display"` // "<金额> <货币> (<百分比>%)"
	IsFinanced      bool   `json:"is_financed"`
	IsActive        bool   `json:"is_active"`
	LessThan24Hours bool   `json:"less_than_24_hours"`
}

// ProjectListItem 项目列表条目，管理列表只关心标题和目标金额
type ProjectListItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Goal  int64  `json:"goal"`
	URL   string `json:"url"`
}

// RewardView 回报视图，可用量实时算出
type RewardView struct {
	model.Reward
	Reserved    int64 `json:"reserved"`
	Awarded     int64 `json:"awarded"`
	Available   int64 `json:"available"`
	IsAvailable bool  `json:"is_available"`
}

// PledgeView 出资视图，匿名出资不暴露出资人
type PledgeView struct {
	ID         uint               `json:"id"`
	ProjectID  uint               `json:"project_id"`
	RewardID   *uint              `json:"reward_id,omitempty"`
	Amount     int64              `json:"amount"`
	Currency   string             `json:"currency"`
	Status     model.PledgeStatus `json:"status"`
	BackerName string             `json:"backer_name,omitempty"`
}

// NewPledgeView 构建出资视图
func NewPledgeView(pledge *model.Pledge) PledgeView {
	view := PledgeView{
		ID:        pledge.ID,
		ProjectID: pledge.ProjectID,
		RewardID:  pledge.RewardID,
		Amount:    pledge.Amount,
		Currency:  pledge.Currency,
		Status:    pledge.Status,
	}
	if !pledge.Anonymously && pledge.Backer != nil {
		view.BackerName = pledge.Backer.Identity().FullName()
	}
	return view
}

// UpdateView 项目动态视图
type UpdateView struct {
	model.ProjectUpdate
	Number int    `json:"number"` // 已发布动态中的序号，草稿为0
	URL    string `json:"url"`
}

// CategoryView 分类视图
type CategoryView struct {
	model.Category
	ProjectCount int64  `json:"project_count"`
	URL          string `json:"url"`
}

// BackerView 出资人视图，身份字段经过账号/本地字段解析
type BackerView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Linked    bool   `json:"linked"` // 是否关联了站点账号
}

// NewBackerView 构建出资人视图
func NewBackerView(backer *model.Backer) BackerView {
	identity := backer.Identity()
	return BackerView{
		ID:        backer.ID,
		FirstName: identity.FirstName(),
		LastName:  identity.LastName(),
		FullName:  identity.FullName(),
		Email:     identity.Email(),
		Linked:    backer.UserID != nil,
	}
}
