package repository

import (
	"testing"
	"time"

	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.QuizQuestion{}, &model.LearningLog{}))
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, kanji string, global, active bool, owner string) *model.QuizQuestion {
	t.Helper()
	q := &model.QuizQuestion{
		Kanji:       kanji,
		Options:     []string{kanji, "山", "川"},
		ImagePath:   "/images/" + kanji + ".png",
		QuestionJa:  "この えは どの かんじかな？",
		QuestionEn:  "Which kanji matches this picture?",
		IsActive:    active,
		IsGlobal:    global,
		OwnerUserID: owner,
	}
	require.NoError(t, db.Create(q).Error)
	return q
}

func TestQuizQuestionRepository_Visibility(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuizQuestionRepository(db)

	seedQuestion(t, db, "木", true, true, "parent")
	seedQuestion(t, db, "日", false, true, "u1")
	seedQuestion(t, db, "月", false, true, "u2")

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	visible, err := repo.FindVisible("u1")
	require.NoError(t, err)
	require.Len(t, visible, 2)
	kanji := []string{visible[0].Kanji, visible[1].Kanji}
	assert.ElementsMatch(t, []string{"木", "日"}, kanji)
}

func TestQuizQuestionRepository_ActiveFilter(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuizQuestionRepository(db)

	seedQuestion(t, db, "木", true, true, "parent")
	seedQuestion(t, db, "日", true, false, "parent")

	active, err := repo.FindActiveVisible("u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "木", active[0].Kanji)
}

func TestQuizQuestionRepository_FindByID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuizQuestionRepository(db)

	q := seedQuestion(t, db, "木", true, true, "parent")

	got, err := repo.FindByID(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "木", got.Kanji)
	assert.Equal(t, []string{"木", "山", "川"}, got.Options)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestQuizQuestionRepository_SavePersistsClearedHint(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuizQuestionRepository(db)

	q := seedQuestion(t, db, "木", true, true, "parent")
	hint := "きをつけて"
	q.HintJa = &hint
	require.NoError(t, repo.Save(q))

	got, err := repo.FindByID(q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.HintJa)

	got.HintJa = nil
	require.NoError(t, repo.Save(got))

	got, err = repo.FindByID(q.ID)
	require.NoError(t, err)
	assert.Nil(t, got.HintJa, "cleared hint must survive a full save")
}

func TestQuizQuestionRepository_Delete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewQuizQuestionRepository(db)

	q := seedQuestion(t, db, "木", true, true, "parent")

	require.NoError(t, repo.Delete(q.ID))
	_, err := repo.FindByID(q.ID)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)

	assert.ErrorIs(t, repo.Delete(q.ID), util.ErrQuestionNotFound)
}

func TestLearningLogRepository_FindByUserIDOrdered(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewLearningLogRepository(db)

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&model.LearningLog{UserID: "u1", Score: 3, TotalQuestions: 10, CompletedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(&model.LearningLog{UserID: "u1", Score: 7, TotalQuestions: 10, CompletedAt: base}))
	require.NoError(t, repo.Create(&model.LearningLog{UserID: "u2", Score: 1, TotalQuestions: 10, CompletedAt: base}))

	logs, err := repo.FindByUserID("u1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 7, logs[0].Score, "oldest completion first")
	assert.Equal(t, 3, logs[1].Score)
}
