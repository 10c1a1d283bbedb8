package repository

import (
	"errors"

	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"gorm.io/gorm"
)

type QuizQuestionRepository struct {
	DB *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) *QuizQuestionRepository {
	return &QuizQuestionRepository{DB: db}
}

// VisibleTo scopes a query to questions the requester may see: global ones
// plus their own. Both list variants share this predicate so the two can
// never drift apart.
func VisibleTo(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_global = ? OR owner_user_id = ?", true, userID)
	}
}

// FindAll returns every question unfiltered. Owner-only path.
func (r *QuizQuestionRepository) FindAll() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Find(&questions).Error
	return questions, err
}

func (r *QuizQuestionRepository) FindVisible(userID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Scopes(VisibleTo(userID)).Find(&questions).Error
	return questions, err
}

func (r *QuizQuestionRepository) FindActiveVisible(userID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Scopes(VisibleTo(userID)).Where("is_active = ?", true).Find(&questions).Error
	return questions, err
}

func (r *QuizQuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	err := r.DB.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuizQuestionRepository) Create(question *model.QuizQuestion) error {
	return r.DB.Create(question).Error
}

// Save writes the full merged record, including cleared nullable hints.
// Model.Updates would skip zero values and mask hint clearing.
func (r *QuizQuestionRepository) Save(question *model.QuizQuestion) error {
	return r.DB.Save(question).Error
}

func (r *QuizQuestionRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.QuizQuestion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}
