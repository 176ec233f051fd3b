package handler

import (
	"net/http"

	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/feinheit/zipfelchappe/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	categoryLogic *logic.CategoryLogic
	defaultLang   string
}

func NewCategoryHandler(db *gorm.DB, cfg config.FundingConfig) *CategoryHandler {
	return &CategoryHandler{
		categoryLogic: logic.NewCategoryLogic(db),
		defaultLang:   cfg.DefaultLanguage,
	}
}

// CreateCategory 创建分类
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryLogic.CreateCategory(&category); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "分类创建成功", category)
}

// GetCategories 获取分类列表，?lang=切换语言，没有翻译时回退原文
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	lang := c.DefaultQuery("lang", h.defaultLang)

	categories, err := h.categoryLogic.GetCategories()
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		resolved := h.categoryLogic.ResolveTranslation(&categories[i], lang)
		count, err := h.categoryLogic.ProjectCount(resolved.ID)
		if err != nil {
			LogicErrorResponse(c, err)
			return
		}
		views = append(views, CategoryView{
			Category:     *resolved,
			ProjectCount: count,
			URL:          resolved.AbsoluteURL(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": views})
}

// GetCategoryBySlug 按slug获取分类
func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	lang := c.DefaultQuery("lang", h.defaultLang)

	category, err := h.categoryLogic.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	resolved := h.categoryLogic.ResolveTranslation(category, lang)
	count, err := h.categoryLogic.ProjectCount(resolved.ID)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": CategoryView{
		Category:     *resolved,
		ProjectCount: count,
		URL:          resolved.AbsoluteURL(),
	}})
}

// UpsertTranslation 写入分类翻译
func (h *CategoryHandler) UpsertTranslation(c *gin.Context) {
	category, err := h.categoryLogic.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	var body struct {
		Language string `json:"language" binding:"required"`
		Title    string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	translation := model.CategoryTranslation{
		CategoryID: category.ID,
		Language:   body.Language,
		Title:      body.Title,
	}
	if err := h.categoryLogic.UpsertTranslation(&translation); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "翻译已保存", translation)
}
