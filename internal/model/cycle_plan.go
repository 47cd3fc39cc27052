package model

import "time"

const (
	SessionStatusPlanned   = "planned"
	SessionStatusCompleted = "completed"
)

// ClassCyclePlan 周期模板对某个班级的实例化：
// 展开后的带日期课次、进度汇总与完成时间戳。
// swagger:model
type ClassCyclePlan struct {
	AssetBase
	ClassID                string         `gorm:"size:36;index" json:"classId"`
	TemplateID             string         `gorm:"size:36;index" json:"templateId"`
	StartDate              time.Time      `json:"startDate"`
	DurationWeeks          int            `json:"durationWeeks"`
	FocusAbilities         []string       `gorm:"serializer:json;type:json" json:"focusAbilities"` // 指派时从模板拷贝

	Sessions               []CycleSession `gorm:"serializer:json;type:json" json:"sessions"`
	Progress               float64        `json:"progress"`    // completed/total，无课次时为1
	CurrentWeek            int            `json:"currentWeek"` // 已完成课次的最大周，限定在 [1, durationWeeks]
	CompletedAt            *time.Time     `json:"completedAt,omitempty"`
	CycleReportGeneratedAt *time.Time     `json:"cycleReportGeneratedAt,omitempty"`
}

func (ClassCyclePlan) TableName() string {
	return "class_cycle_plans"
}

// CycleSession 计划中的一节课。
type CycleSession struct {
	ID            string     `json:"id"`
	Week          int        `json:"week"`
	MissionCardID string     `json:"missionCardId"`
	PlannedDate   time.Time  `json:"plannedDate"`
	Status        string     `json:"status"`
	ActualDate    *time.Time `json:"actualDate,omitempty"`
}
