package main

import (
	"github.com/feinheit/zipfelchappe/internal/config"
	"github.com/feinheit/zipfelchappe/internal/database"
	"github.com/feinheit/zipfelchappe/internal/extension"
	"github.com/feinheit/zipfelchappe/internal/logger"
	"github.com/feinheit/zipfelchappe/internal/mailer"
	"github.com/feinheit/zipfelchappe/internal/router"
	"github.com/feinheit/zipfelchappe/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Output: cfg.Log.Output,
		File:   cfg.Log.File,
	}); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 宿主CMS的插件注册点：内容类型、区域、启动检查
	registry := extension.NewRegistry()
	registry.RegisterContentType("richtext")
	registry.RegisterContentType("mediafile")
	registry.RegisterRegions(
		extension.Region{Key: "main", Title: "Main content"},
		extension.Region{Key: "sidebar", Title: "Sidebar"},
	)
	registry.RegisterStartupCheck(database.CheckSchema)
	if err := registry.RunStartupChecks(db); err != nil {
		logger.Fatal("Startup checks failed: %v", err)
	}

	// 致谢邮件分发器
	dispatcher, err := mailer.NewDispatcher(db, cfg.Mail, mailer.LogSender{})
	if err != nil {
		logger.Fatal("Failed to initialize mailer: %v", err)
	}
	defer dispatcher.Release()

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, cfg, dispatcher)

	// 启动定时任务
	manager := scheduler.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
