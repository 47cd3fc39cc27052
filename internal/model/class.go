package model

// Class 训练班级，报告生成时按 studentIds 解析学员名册。
// swagger:model
type Class struct {
	AssetBase
	Name       string   `gorm:"size:255" json:"name"`
	CoachName  string   `gorm:"size:255" json:"coachName"`
	StudentIDs []string `gorm:"serializer:json;type:json" json:"studentIds"`
}

func (Class) TableName() string {
	return "classes"
}

// Student 学员档案。
// swagger:model
type Student struct {
	AssetBase
	Name      string `gorm:"size:255" json:"name"`
	ClassID   string `gorm:"size:36;index" json:"classId"`
	Gender    string `gorm:"size:16" json:"gender"`
	BirthDate string `gorm:"size:16" json:"birthDate"` // YYYY-MM-DD
}

func (Student) TableName() string {
	return "students"
}
