package model

import "time"

// 计速指标名称。SRI 计算取 30秒单摇、60秒单摇与 30秒双摇三项，
// 旧数据没有 30秒单摇时回退到 rope_skip_speed。
const (
	MetricSingle30        = "single_under_30s"
	MetricSingle60        = "single_under_60s"
	MetricDouble30        = "double_under_30s"
	MetricLegacyRopeSpeed = "rope_skip_speed"
)

// FitnessTest 一次体能测试记录：六维雷达分 + 若干命名计数指标。
// swagger:model
type FitnessTest struct {
	AssetBase
	StudentID string             `gorm:"size:36;index" json:"studentId"`
	TestedAt  time.Time          `json:"testedAt"`
	Radar     map[string]float64 `gorm:"serializer:json;type:json" json:"radar"`
	Metrics   []MetricItem       `gorm:"serializer:json;type:json" json:"metrics"`
	Notes     string             `gorm:"type:text" json:"notes"`
}

func (FitnessTest) TableName() string {
	return "fitness_tests"
}

type MetricItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MetricValue 返回指定名称的指标值，不存在时 ok 为 false。
func (t *FitnessTest) MetricValue(name string) (float64, bool) {
	for _, m := range t.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}
