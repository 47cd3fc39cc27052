package model

// Unit 可复用的单课时训练模板，由若干训练环节组成。
// swagger:model
type Unit struct {
	AssetBase
	StageID string  `gorm:"size:36;index" json:"stageId"`
	Name    string  `gorm:"size:255" json:"name"`
	Period  string  `gorm:"size:64" json:"period"` // 所属训练期标签
	Blocks  []Block `gorm:"serializer:json;type:json" json:"blocks"`
}

func (Unit) TableName() string {
	return "units"
}

// Block 课时内的一个环节（热身、技术组、游戏等）。
// 嵌入在 Unit / MissionCard 内，不独立存储。
type Block struct {
	ID               string   `json:"id"`
	Period           string   `json:"period"`
	Stimulus         string   `json:"stimulus"`  // 刺激类型
	Intensity        string   `json:"intensity"` // 强度档位
	DurationMinutes  int      `json:"durationMinutes"`
	DrillIDs         []string `json:"drillIds"`
	GameIDs          []string `json:"gameIds"`
	PuzzleTemplateID string   `json:"puzzleTemplateId,omitempty"`
	PuzzleCardIDs    []string `json:"puzzleCardIds"`
}
