package model

// Drill 原子训练动作（如"单摇计数30秒"）。
// swagger:model
type Drill struct {
	AssetBase
	Name            string   `gorm:"size:255" json:"name"`
	Abilities       []string `gorm:"serializer:json;type:json" json:"abilities"`
	Stimulus        string   `gorm:"size:64" json:"stimulus"`
	Intensity       string   `gorm:"size:32" json:"intensity"`
	DurationMinutes int      `json:"durationMinutes"`
	Equipment       []string `gorm:"serializer:json;type:json" json:"equipment"`
	CoachNotes      string   `gorm:"type:text" json:"coachNotes"`
	DemoVideoURL    string   `gorm:"size:512" json:"demoVideoUrl,omitempty"`
}

func (Drill) TableName() string {
	return "drills"
}

// Game 趣味活动记录，形状与 Drill 基本一致，另带人数建议。
// swagger:model
type Game struct {
	AssetBase
	Name            string   `gorm:"size:255" json:"name"`
	Abilities       []string `gorm:"serializer:json;type:json" json:"abilities"`
	Stimulus        string   `gorm:"size:64" json:"stimulus"`
	Intensity       string   `gorm:"size:32" json:"intensity"`
	DurationMinutes int      `json:"durationMinutes"`
	Players         string   `gorm:"size:64" json:"players"`
	Equipment       []string `gorm:"serializer:json;type:json" json:"equipment"`
	CoachNotes      string   `gorm:"type:text" json:"coachNotes"`
	DemoVideoURL    string   `gorm:"size:512" json:"demoVideoUrl,omitempty"`
}

func (Game) TableName() string {
	return "games"
}
