package service

import (
	"errors"
	"testing"

	"github.com/GinYoshida/kanji-quize/internal/model"
	mock_service "github.com/GinYoshida/kanji-quize/internal/service/mock"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuizServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockQuizQuestionStore)) *QuizService {
	t.Helper()
	repo := mock_service.NewMockQuizQuestionStore(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}
	return NewQuizService(repo)
}

func validCreateInput() CreateQuestionInput {
	return CreateQuestionInput{
		Kanji:      "木",
		Options:    []string{"木", "山", "川"},
		ImagePath:  "/images/tree.png",
		QuestionJa: "この えは どの かんじかな？",
		QuestionEn: "Which kanji matches this picture?",
	}
}

func TestQuizService_CreateQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   func() CreateQuestionInput
		f       func(*mock_service.MockQuizQuestionStore)
		wantErr string
	}{
		{
			name:  "success",
			input: validCreateInput,
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().Create(gomock.Any()).Return(nil)
			},
		},
		{
			name: "too few options",
			input: func() CreateQuestionInput {
				in := validCreateInput()
				in.Options = []string{"木", "山"}
				return in
			},
			wantErr: "options must contain exactly 3 entries",
		},
		{
			name: "too many options",
			input: func() CreateQuestionInput {
				in := validCreateInput()
				in.Options = []string{"木", "山", "川", "日"}
				return in
			},
			wantErr: "options must contain exactly 3 entries",
		},
		{
			name: "options missing the correct kanji",
			input: func() CreateQuestionInput {
				in := validCreateInput()
				in.Options = []string{"日", "山", "川"}
				return in
			},
			wantErr: "options must include the correct kanji",
		},
		{
			name: "missing kanji",
			input: func() CreateQuestionInput {
				in := validCreateInput()
				in.Kanji = ""
				return in
			},
			wantErr: "kanji is required",
		},
		{
			name: "missing question text",
			input: func() CreateQuestionInput {
				in := validCreateInput()
				in.QuestionEn = ""
				return in
			},
			wantErr: "questionEn is required",
		},
		{
			name:  "store failure propagates",
			input: validCreateInput,
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			s := newQuizServiceMock(t, ctrl, tt.f)

			question, err := s.CreateQuestion("owner-1", tt.input())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "owner-1", question.OwnerUserID)
			assert.True(t, question.IsActive, "questions default to active")
		})
	}
}

func TestQuizService_CreateQuestionValidationErrorType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := newQuizServiceMock(t, ctrl, nil)

	in := validCreateInput()
	in.Options = []string{"木"}
	_, err := s.CreateQuestion("owner-1", in)
	assert.True(t, util.IsValidationError(err))
}

func storedQuestion() *model.QuizQuestion {
	hint := "きをつけて"
	return &model.QuizQuestion{
		BaseModel:   model.BaseModel{ID: 7},
		Kanji:       "木",
		Options:     []string{"木", "山", "川"},
		ImagePath:   "/images/tree.png",
		QuestionJa:  "この えは どの かんじかな？",
		QuestionEn:  "Which kanji matches this picture?",
		HintJa:      &hint,
		IsActive:    true,
		IsGlobal:    true,
		OwnerUserID: "owner-1",
	}
}

func TestQuizService_UpdateQuestion(t *testing.T) {
	t.Parallel()

	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name    string
		input   UpdateQuestionInput
		f       func(*mock_service.MockQuizQuestionStore)
		check   func(*testing.T, *model.QuizQuestion)
		wantErr error
	}{
		{
			name:  "deactivate keeps other fields",
			input: UpdateQuestionInput{IsActive: boolPtr(false)},
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().FindByID(uint(7)).Return(storedQuestion(), nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, q *model.QuizQuestion) {
				assert.False(t, q.IsActive)
				assert.Equal(t, "木", q.Kanji)
				require.NotNil(t, q.HintJa)
				assert.Equal(t, "きをつけて", *q.HintJa)
			},
		},
		{
			name:  "explicit null clears the hint",
			input: UpdateQuestionInput{HintJa: util.NullOptional[string]()},
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().FindByID(uint(7)).Return(storedQuestion(), nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, q *model.QuizQuestion) {
				assert.Nil(t, q.HintJa)
			},
		},
		{
			name:  "absent hint stays untouched",
			input: UpdateQuestionInput{QuestionEn: func() *string { s := "Pick the kanji!"; return &s }()},
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().FindByID(uint(7)).Return(storedQuestion(), nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, q *model.QuizQuestion) {
				assert.Equal(t, "Pick the kanji!", q.QuestionEn)
				require.NotNil(t, q.HintJa)
				assert.Equal(t, "きをつけて", *q.HintJa)
			},
		},
		{
			name:  "merged record is re-validated",
			input: UpdateQuestionInput{Kanji: func() *string { s := "日"; return &s }()},
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().FindByID(uint(7)).Return(storedQuestion(), nil)
			},
			wantErr: util.NewValidationError("options must include the correct kanji"),
		},
		{
			name:  "unknown id",
			input: UpdateQuestionInput{IsActive: boolPtr(false)},
			f: func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().FindByID(uint(7)).Return(nil, util.ErrQuestionNotFound)
			},
			wantErr: util.ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			s := newQuizServiceMock(t, ctrl, tt.f)

			question, err := s.UpdateQuestion(7, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			tt.check(t, question)
		})
	}
}

func TestQuizService_ListQuestions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	all := []model.QuizQuestion{*storedQuestion()}

	s := newQuizServiceMock(t, ctrl, func(m *mock_service.MockQuizQuestionStore) {
		m.EXPECT().FindAll().Return(all, nil)
		m.EXPECT().FindVisible("u2").Return(nil, nil)
	})

	got, err := s.ListQuestions("owner-1", true)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	got, err = s.ListQuestions("u2", false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuizService_GetQuestionVisibility(t *testing.T) {
	t.Parallel()

	private := storedQuestion()
	private.IsGlobal = false // owned by owner-1

	tests := []struct {
		name        string
		requesterID string
		isOwner     bool
		question    *model.QuizQuestion
		wantErr     error
	}{
		{name: "owner sees any question", requesterID: "parent", isOwner: true, question: private},
		{name: "author sees their own private question", requesterID: "owner-1", question: private},
		{name: "anyone sees a global question", requesterID: "u2", question: storedQuestion()},
		{
			name:        "foreign private question looks missing",
			requesterID: "u2",
			question:    private,
			wantErr:     util.ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			s := newQuizServiceMock(t, ctrl, func(m *mock_service.MockQuizQuestionStore) {
				m.EXPECT().FindByID(uint(7)).Return(tt.question, nil)
			})

			got, err := s.GetQuestion(7, tt.requesterID, tt.isOwner)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.question, got)
		})
	}
}

func TestQuizService_DeleteQuestionNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := newQuizServiceMock(t, ctrl, func(m *mock_service.MockQuizQuestionStore) {
		m.EXPECT().Delete(uint(99)).Return(util.ErrQuestionNotFound)
	})

	err := s.DeleteQuestion(99)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}
