package model

// Stage 成长阶段，例如"节奏启蒙期"、"花样进阶期"。
// swagger:model
type Stage struct {
	AssetBase
	Name           string            `gorm:"size:255" json:"name"`
	Icon           string            `gorm:"size:64" json:"icon"`
	Color          string            `gorm:"size:32" json:"color"`
	Summary        string            `gorm:"type:text" json:"summary"`
	FocusAbilities []string          `gorm:"serializer:json;type:json" json:"focusAbilities"`
	CoreTasks      []string          `gorm:"serializer:json;type:json" json:"coreTasks"`
	Milestones     []string          `gorm:"serializer:json;type:json" json:"milestones"`
	AgeGuidance    []AgeBandGuidance `gorm:"serializer:json;type:json" json:"ageGuidance"`
	CycleThemes    []PeriodTheme     `gorm:"serializer:json;type:json" json:"cycleThemes"`
	RoadmapStageID string            `gorm:"size:36" json:"roadmapStageId,omitempty"` // 外部成长路线图阶段，可为空
	NextStageID    string            `gorm:"size:36" json:"nextStageId,omitempty"`    // 推荐的下一阶段，可悬空
}

func (Stage) TableName() string {
	return "stages"
}

// AgeBandGuidance 分年龄段的训练建议行。
type AgeBandGuidance struct {
	AgeBand  string   `json:"ageBand"`
	Emphasis string   `json:"emphasis"`
	Cautions []string `json:"cautions"`
}

// PeriodTheme 某训练期（如准备期、比赛期）的负荷主题。
type PeriodTheme struct {
	Period    string   `json:"period"`
	Theme     string   `json:"theme"`
	LoadFocus []string `json:"loadFocus"`
}
