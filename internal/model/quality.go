package model

// Quality 能力维度描述（速度、协调等），其它资产通过 key 字符串引用。
// swagger:model
type Quality struct {
	AssetBase
	Key         string `gorm:"size:64;index" json:"key"`
	Name        string `gorm:"size:255" json:"name"`
	Icon        string `gorm:"size:64" json:"icon"`
	Color       string `gorm:"size:32" json:"color"`
	Description string `gorm:"type:text" json:"description"`
}

func (Quality) TableName() string {
	return "qualities"
}
