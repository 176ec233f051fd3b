package router

import (
	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/handler"
	"github.com/feinheit/zipfelchappe/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config, notifier logic.PaidNotifier) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "zipfelchappe",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		projectHandler := handler.NewProjectHandler(db, cfg.Funding)
		pledgeHandler := handler.NewPledgeHandler(db, notifier)
		rewardHandler := handler.NewRewardHandler(db)
		updateHandler := handler.NewUpdateHandler(db)
		mailHandler := handler.NewMailTemplateHandler(db)
		categoryHandler := handler.NewCategoryHandler(db, cfg.Funding)
		backerHandler := handler.NewBackerHandler(db)

		// 项目以及挂在项目下的内联编辑
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)

			projects.POST("/:id/pledges", pledgeHandler.CreatePledge)
			projects.GET("/:id/pledges", pledgeHandler.GetProjectPledges)

			projects.POST("/:id/rewards", rewardHandler.CreateReward)
			projects.GET("/:id/rewards", rewardHandler.GetProjectRewards)

			projects.POST("/:id/updates", updateHandler.CreateUpdate)
			projects.GET("/:id/updates", updateHandler.GetProjectUpdates)

			projects.PUT("/:id/mail-templates/:action", mailHandler.UpsertTemplate)
			projects.GET("/:id/mail-templates", mailHandler.GetProjectTemplates)
		}

		// 出资状态由支付方回调推进
		pledges := v1.Group("/pledges")
		{
			pledges.GET("/:id", pledgeHandler.GetPledge)
			pledges.PUT("/:id/status", pledgeHandler.UpdatePledgeStatus)
		}

		rewards := v1.Group("/rewards")
		{
			rewards.PUT("/:id", rewardHandler.UpdateReward)
			rewards.DELETE("/:id", rewardHandler.DeleteReward)
		}

		updates := v1.Group("/updates")
		{
			updates.POST("/:id/publish", updateHandler.PublishUpdate)
			updates.POST("/:id/mails-sent", updateHandler.MarkMailsSent)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:slug", categoryHandler.GetCategoryBySlug)
			categories.PUT("/:slug/translations", categoryHandler.UpsertTranslation)
		}

		backers := v1.Group("/backers")
		{
			backers.POST("", backerHandler.CreateBacker)
			backers.GET("", backerHandler.GetBackers)
			backers.GET("/:id", backerHandler.GetBacker)
		}

		v1.POST("/users/:id/backer", backerHandler.GetOrCreateForUser)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
