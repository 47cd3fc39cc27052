package model

import "time"

// CycleReport 周期结课报告，每（周期实例, 学员）一条，
// 在计划进度到达100%时一次性生成。
// swagger:model
type CycleReport struct {
	AssetBase
	PlanID      string             `gorm:"size:36;index" json:"planId"`
	ClassID     string             `gorm:"size:36;index" json:"classId"`
	StudentID   string             `gorm:"size:36;index" json:"studentId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	PeriodStart time.Time          `json:"periodStart"`
	PeriodEnd   time.Time          `json:"periodEnd"` // 名义结束日期，取课次实际日期与模板周数推算中较晚者

	RadarBefore map[string]float64 `gorm:"serializer:json;type:json" json:"radarBefore"`
	RadarAfter  map[string]float64 `gorm:"serializer:json;type:json" json:"radarAfter"`
	SRIBefore   *float64           `json:"sriBefore,omitempty"`
	SRIAfter    *float64           `json:"sriAfter,omitempty"`
	Deltas      []AbilityDelta     `gorm:"serializer:json;type:json" json:"deltas"`
	Highlight   string             `gorm:"type:text" json:"highlight"`
	Suggestion  string             `gorm:"type:text" json:"suggestion"`
}

func (CycleReport) TableName() string {
	return "cycle_reports"
}

// AbilityDelta 聚焦能力的前后对比行，按提升幅度降序排列。
type AbilityDelta struct {
	Ability string  `json:"ability"`
	Before  float64 `json:"before"`
	After   float64 `json:"after"`
	Delta   float64 `json:"delta"`
}
