package model

// QuizQuestion 漢字クイズの1問。画像を見て正しい漢字を3択から選ぶ。
type QuizQuestion struct {
	BaseModel
	Kanji       string   `gorm:"size:8;not null" json:"kanji"`
	Options     []string `gorm:"type:json;serializer:json;not null" json:"options"`
	ImagePath   string   `gorm:"size:255;not null" json:"imagePath"`
	QuestionJa  string   `gorm:"size:255;not null" json:"questionJa"`
	QuestionEn  string   `gorm:"size:255;not null" json:"questionEn"`
	HintJa      *string  `gorm:"size:255" json:"hintJa"`
	HintEn      *string  `gorm:"size:255" json:"hintEn"`
	// no column default: a zero-valued bool with a default tag would be
	// dropped from the INSERT and silently flip to the default
	IsActive    bool     `gorm:"not null" json:"isActive"`
	IsGlobal    bool     `gorm:"not null" json:"isGlobal"`
	OwnerUserID string   `gorm:"size:36;index" json:"ownerUserId"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
