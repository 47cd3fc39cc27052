package model

// MissionCard 任务卡：可被周期模板排课的命名课时模板。
// swagger:model
type MissionCard struct {
	AssetBase
	Name   string  `gorm:"size:255" json:"name"`
	Phase  string  `gorm:"size:64" json:"phase"`
	Blocks []Block `gorm:"serializer:json;type:json" json:"blocks"`
}

func (MissionCard) TableName() string {
	return "mission_cards"
}
