package service

import (
	"slices"

	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"
)

// QuizQuestionStore is the persistence surface the quiz service needs.
//
//go:generate mockgen -source=quiz_service.go -destination=mock/quiz_store_mock.go -package=mock_service
type QuizQuestionStore interface {
	FindAll() ([]model.QuizQuestion, error)
	FindVisible(userID string) ([]model.QuizQuestion, error)
	FindActiveVisible(userID string) ([]model.QuizQuestion, error)
	FindByID(id uint) (*model.QuizQuestion, error)
	Create(question *model.QuizQuestion) error
	Save(question *model.QuizQuestion) error
	Delete(id uint) error
}

type QuizService struct {
	repo QuizQuestionStore
}

func NewQuizService(repo QuizQuestionStore) *QuizService {
	return &QuizService{repo: repo}
}

const optionCount = 3

type CreateQuestionInput struct {
	Kanji      string   `json:"kanji"`
	Options    []string `json:"options"`
	ImagePath  string   `json:"imagePath"`
	QuestionJa string   `json:"questionJa"`
	QuestionEn string   `json:"questionEn"`
	HintJa     *string  `json:"hintJa"`
	HintEn     *string  `json:"hintEn"`
	IsActive   *bool    `json:"isActive"`
	IsGlobal   bool     `json:"isGlobal"`
}

// UpdateQuestionInput carries PATCH semantics: nil pointers leave the field
// untouched; Optional hints distinguish "absent" from an explicit null that
// clears the stored hint.
type UpdateQuestionInput struct {
	Kanji      *string                `json:"kanji"`
	Options    *[]string              `json:"options"`
	ImagePath  *string                `json:"imagePath"`
	QuestionJa *string                `json:"questionJa"`
	QuestionEn *string                `json:"questionEn"`
	HintJa     util.Optional[string]  `json:"hintJa"`
	HintEn     util.Optional[string]  `json:"hintEn"`
	IsActive   *bool                  `json:"isActive"`
	IsGlobal   *bool                  `json:"isGlobal"`
}

// validateQuestion enforces the question invariants and reports the first
// violated constraint.
func validateQuestion(q *model.QuizQuestion) error {
	if q.Kanji == "" {
		return util.NewValidationError("kanji is required")
	}
	if len(q.Options) != optionCount {
		return util.NewValidationError("options must contain exactly 3 entries")
	}
	if !slices.Contains(q.Options, q.Kanji) {
		return util.NewValidationError("options must include the correct kanji")
	}
	if q.ImagePath == "" {
		return util.NewValidationError("imagePath is required")
	}
	if q.QuestionJa == "" {
		return util.NewValidationError("questionJa is required")
	}
	if q.QuestionEn == "" {
		return util.NewValidationError("questionEn is required")
	}
	return nil
}

// ListQuestions returns every question for an owner and only visible ones
// for anybody else.
func (s *QuizService) ListQuestions(requesterID string, isOwner bool) ([]model.QuizQuestion, error) {
	if isOwner {
		return s.repo.FindAll()
	}
	return s.repo.FindVisible(requesterID)
}

// ListActiveQuestions is the set that drives gameplay.
func (s *QuizService) ListActiveQuestions(requesterID string) ([]model.QuizQuestion, error) {
	return s.repo.FindActiveVisible(requesterID)
}

// GetQuestion applies the same visibility rule as the list variants: a
// foreign private question is indistinguishable from a missing one.
func (s *QuizService) GetQuestion(id uint, requesterID string, isOwner bool) (*model.QuizQuestion, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !isOwner && !question.IsGlobal && question.OwnerUserID != requesterID {
		return nil, util.ErrQuestionNotFound
	}
	return question, nil
}

func (s *QuizService) CreateQuestion(ownerUserID string, input CreateQuestionInput) (*model.QuizQuestion, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	question := &model.QuizQuestion{
		Kanji:       input.Kanji,
		Options:     input.Options,
		ImagePath:   input.ImagePath,
		QuestionJa:  input.QuestionJa,
		QuestionEn:  input.QuestionEn,
		HintJa:      input.HintJa,
		HintEn:      input.HintEn,
		IsActive:    active,
		IsGlobal:    input.IsGlobal,
		OwnerUserID: ownerUserID,
	}

	if err := validateQuestion(question); err != nil {
		return nil, err
	}
	if err := s.repo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// UpdateQuestion merges the supplied fields onto the stored record and
// re-validates the result before persisting.
func (s *QuizService) UpdateQuestion(id uint, input UpdateQuestionInput) (*model.QuizQuestion, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Kanji != nil {
		question.Kanji = *input.Kanji
	}
	if input.Options != nil {
		question.Options = *input.Options
	}
	if input.ImagePath != nil {
		question.ImagePath = *input.ImagePath
	}
	if input.QuestionJa != nil {
		question.QuestionJa = *input.QuestionJa
	}
	if input.QuestionEn != nil {
		question.QuestionEn = *input.QuestionEn
	}
	if input.HintJa.Set {
		question.HintJa = input.HintJa.Ptr()
	}
	if input.HintEn.Set {
		question.HintEn = input.HintEn.Ptr()
	}
	if input.IsActive != nil {
		question.IsActive = *input.IsActive
	}
	if input.IsGlobal != nil {
		question.IsGlobal = *input.IsGlobal
	}

	if err := validateQuestion(question); err != nil {
		return nil, err
	}
	if err := s.repo.Save(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) DeleteQuestion(id uint) error {
	return s.repo.Delete(id)
}
