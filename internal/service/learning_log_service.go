package service

import (
	"time"

	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"
)

// LearningLogStore is the persistence surface the log service needs.
//
//go:generate mockgen -source=learning_log_service.go -destination=mock/log_store_mock.go -package=mock_service
type LearningLogStore interface {
	Create(log *model.LearningLog) error
	FindByUserID(userID string) ([]model.LearningLog, error)
}

type LearningLogService struct {
	repo LearningLogStore
	now  func() time.Time
}

func NewLearningLogService(repo LearningLogStore) *LearningLogService {
	return &LearningLogService{repo: repo, now: time.Now}
}

// CreateLog persists one finished session's outcome. The completion
// timestamp is always server-assigned.
func (s *LearningLogService) CreateLog(userID string, score, totalQuestions int) (*model.LearningLog, error) {
	if score < 0 {
		return nil, util.NewValidationError("score must not be negative")
	}
	if totalQuestions < 0 {
		return nil, util.NewValidationError("totalQuestions must not be negative")
	}
	if score > totalQuestions {
		return nil, util.NewValidationError("score must not exceed totalQuestions")
	}

	log := &model.LearningLog{
		UserID:         userID,
		Score:          score,
		TotalQuestions: totalQuestions,
		CompletedAt:    s.now(),
	}
	if err := s.repo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListLogsByUser returns the user's logs ordered by completion time ascending.
func (s *LearningLogService) ListLogsByUser(userID string) ([]model.LearningLog, error) {
	return s.repo.FindByUserID(userID)
}
