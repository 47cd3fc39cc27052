// @title 跳绳教练课程管理 API
// @version 1.0
// @description 面向教练的跳绳课程体系管理后端：课程资产库、周期排课、课次进度与结课报告。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"rope_coach_backend/internal/app"
	"rope_coach_backend/internal/config"
	"rope_coach_backend/pkg/configwatcher"
	"rope_coach_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 配置热加载：JWT密钥按请求读取可以热换，其余配置改了要重启
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		cfg.JWT = newCfg.JWT
		logger.Log.Info("配置已热加载", zap.Duration("jwt_expire", cfg.JWT.ExpireTime))
	})

	application.Run()
}
