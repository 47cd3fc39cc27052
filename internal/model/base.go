package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetBase 所有课程资产的公共字段。资产ID为字符串UUID，
// 缺失时在归一化阶段补齐（见 normalize.go），此后不再变化。
type AssetBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func GenerateUUID() string {
	return uuid.New().String()
}

// AbilityKeys 报告固定使用的六个能力维度。
var AbilityKeys = []string{
	AbilitySpeed,
	AbilityPower,
	AbilityCoordination,
	AbilityAgility,
	AbilityEndurance,
	AbilityFlexibility,
}

const (
	AbilitySpeed        = "speed"
	AbilityPower        = "power"
	AbilityCoordination = "coordination"
	AbilityAgility      = "agility"
	AbilityEndurance    = "endurance"
	AbilityFlexibility  = "flexibility"
)
