package model

// PuzzleTemplate 拼图激励卡组，由 PuzzleService 独立维护，
// 训练资产只通过ID引用（Block、CycleWeek）。
// swagger:model
type PuzzleTemplate struct {
	AssetBase
	Name             string       `gorm:"size:255" json:"name"`
	Category         string       `gorm:"size:64" json:"category"`
	Difficulty       int          `json:"difficulty"` // 1-5
	AssignScope      string       `gorm:"size:64" json:"assignScope"`
	RecommendedScene string       `gorm:"size:128" json:"recommendedScene"`
	RecommendedAges  string       `gorm:"size:64" json:"recommendedAges"`
	Cards            []PuzzleCard `gorm:"serializer:json;type:json" json:"cards"`
	EnergyTotal      int          `json:"energyTotal"`
}

func (PuzzleTemplate) TableName() string {
	return "puzzle_templates"
}

type PuzzleCard struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Energy int    `json:"energy"`
}
