package model

// Plan 阶段内的多周训练计划，按周引用训练单元。
// weeks[].unitIds 允许悬空引用，消费方自行处理"未找到"。
// swagger:model
type Plan struct {
	AssetBase
	StageID       string      `gorm:"size:36;index" json:"stageId"`
	Name          string      `gorm:"size:255" json:"name"`
	Summary       string      `gorm:"type:text" json:"summary"`
	DurationWeeks int         `json:"durationWeeks"`
	Weeks         []PlanWeek  `gorm:"serializer:json;type:json" json:"weeks"`
	Phases        []PlanPhase `gorm:"serializer:json;type:json" json:"phases"`
}

func (Plan) TableName() string {
	return "plans"
}

type PlanWeek struct {
	Week           int      `json:"week"`
	Theme          string   `json:"theme"`
	FocusAbilities []string `json:"focusAbilities"`
	UnitIDs        []string `json:"unitIds"`
}

// PlanPhase 周期化分段（准备期/强化期等）。
type PlanPhase struct {
	Name            string   `json:"name"`
	DurationWeeks   int      `json:"durationWeeks"`
	Load            string   `json:"load"`
	FocusPoints     []string `json:"focusPoints"`
	RecommendedAges []string `json:"recommendedAges"`
}
