package database

import (
	"fmt"
	"log"

	"rope_coach_backend/internal/config"
	"rope_coach_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表/迁移全部模型并预置默认数据，测试环境也走同一入口。
func Migrate(db *gorm.DB) error {
	if err := migrateModels(db); err != nil {
		return err
	}
	seedQualities(db)
	return nil
}

func migrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Stage{},
		&model.Plan{},
		&model.Unit{},
		&model.Quality{},
		&model.Drill{},
		&model.Game{},
		&model.MissionCard{},
		&model.CycleTemplate{},
		&model.PuzzleTemplate{},
		&model.Class{},
		&model.Student{},
		&model.FitnessTest{},
		&model.ClassCyclePlan{},
		&model.CycleReport{},
	)
}

// 首次启动时写入六个默认能力维度，教练可在此基础上增删。
func seedQualities(db *gorm.DB) {
	var count int64
	db.Model(&model.Quality{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Quality{
		{Key: model.AbilitySpeed, Name: "速度", Icon: "⚡", Color: "#f5a623", Description: "单位时间摇绳次数，30秒/60秒单摇计数的核心维度"},
		{Key: model.AbilityPower, Name: "力量", Icon: "💪", Color: "#d0021b", Description: "下肢爆发与核心支撑，双摇和高抬腿跳的基础"},
		{Key: model.AbilityCoordination, Name: "协调", Icon: "🤸", Color: "#7ed321", Description: "手脚配合与节奏感，花样动作的先决条件"},
		{Key: model.AbilityAgility, Name: "灵敏", Icon: "🏃", Color: "#4a90d9", Description: "变向与反应速度，交互绳进出绳的关键"},
		{Key: model.AbilityEndurance, Name: "耐力", Icon: "🔋", Color: "#9013fe", Description: "持续跳绳能力，3分钟以上计数项目的核心"},
		{Key: model.AbilityFlexibility, Name: "柔韧", Icon: "🧘", Color: "#50e3c2", Description: "关节活动度与落地缓冲，伤病预防的基础"},
	}
	for i := range defaults {
		model.NormalizeQuality(&defaults[i])
		db.Create(&defaults[i])
	}
}
