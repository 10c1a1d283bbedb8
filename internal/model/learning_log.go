package model

import "time"

// LearningLog はクイズ1回分の結果。作成後は変更されない。
type LearningLog struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string    `gorm:"size:36;index;not null" json:"userId"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	CompletedAt    time.Time `gorm:"index" json:"completedAt"`
}

func (LearningLog) TableName() string {
	return "learning_logs"
}
