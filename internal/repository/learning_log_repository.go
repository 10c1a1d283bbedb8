package repository

import (
	"github.com/GinYoshida/kanji-quize/internal/model"

	"gorm.io/gorm"
)

type LearningLogRepository struct {
	DB *gorm.DB
}

func NewLearningLogRepository(db *gorm.DB) *LearningLogRepository {
	return &LearningLogRepository{DB: db}
}

func (r *LearningLogRepository) Create(log *model.LearningLog) error {
	return r.DB.Create(log).Error
}

// FindByUserID returns the user's logs in completion order, oldest first.
func (r *LearningLogRepository) FindByUserID(userID string) ([]model.LearningLog, error) {
	var logs []model.LearningLog
	err := r.DB.Where("user_id = ?", userID).Order("completed_at ASC").Find(&logs).Error
	return logs, err
}
