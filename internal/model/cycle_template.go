package model

// CycleTemplate 多周训练周期模板，可指派给班级实例化。
// weekPlan[].missionCards 引用任务卡ID，允许悬空。
// swagger:model
type CycleTemplate struct {
	AssetBase
	Name            string      `gorm:"size:255" json:"name"`
	Category        string      `gorm:"size:64" json:"category"`
	StageID         string      `gorm:"size:36" json:"stageId,omitempty"`
	DurationWeeks   int         `json:"durationWeeks"`
	FocusAbilities  []string    `gorm:"serializer:json;type:json" json:"focusAbilities"`
	WeekPlan        []CycleWeek `gorm:"serializer:json;type:json" json:"weekPlan"`
	TrackingMetrics []string    `gorm:"serializer:json;type:json" json:"trackingMetrics"`
}

func (CycleTemplate) TableName() string {
	return "cycle_templates"
}

type CycleWeek struct {
	Week             int      `json:"week"`
	Focus            string   `json:"focus"`
	MissionCards     []string `json:"missionCards"`
	PuzzleTemplateID string   `json:"puzzleTemplateId,omitempty"`
	PuzzleCardIDs    []string `json:"puzzleCardIds"`
}
