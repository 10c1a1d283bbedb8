package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GinYoshida/kanji-quize/internal/model"
	"github.com/GinYoshida/kanji-quize/internal/service"
	mock_service "github.com/GinYoshida/kanji-quize/internal/service/mock"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingProvider is an in-memory stand-in for the storage backends.
type recordingProvider struct {
	deleted []string
}

func (p *recordingProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	return p.GetURL(filename), nil
}

func (p *recordingProvider) Delete(ctx context.Context, filename string) error {
	p.deleted = append(p.deleted, filename)
	return nil
}

func (p *recordingProvider) GetURL(filename string) string {
	return "/images/" + filename
}

func newTestContext(t *testing.T, method, target string, claims *util.Claims) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, target, nil)
	if claims != nil {
		ctx.Set("user", claims)
	}
	return ctx, w
}

func privateQuestion(owner string) *model.QuizQuestion {
	return &model.QuizQuestion{
		BaseModel:   model.BaseModel{ID: 7},
		Kanji:       "木",
		Options:     []string{"木", "山", "川"},
		ImagePath:   "/images/kanji-7.png",
		QuestionJa:  "この えは どの かんじかな？",
		QuestionEn:  "Which kanji matches this picture?",
		IsActive:    true,
		IsGlobal:    false,
		OwnerUserID: owner,
	}
}

func TestQuizController_GetQuestionHidesForeignPrivate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock_service.NewMockQuizQuestionStore(ctrl)
	store.EXPECT().FindByID(uint(7)).Return(privateQuestion("u9"), nil)

	qc := NewQuizController(service.NewQuizService(store), &service.StorageService{Provider: &recordingProvider{}})

	ctx, w := newTestContext(t, http.MethodGet, "/api/quizzes/7", &util.Claims{UserID: "u1", Role: model.RolePlayer})
	ctx.Params = gin.Params{{Key: "id", Value: "7"}}

	qc.GetQuestion(ctx)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuizController_GetQuestionOwnerSeesPrivate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock_service.NewMockQuizQuestionStore(ctrl)
	store.EXPECT().FindByID(uint(7)).Return(privateQuestion("u9"), nil)

	qc := NewQuizController(service.NewQuizService(store), &service.StorageService{Provider: &recordingProvider{}})

	ctx, w := newTestContext(t, http.MethodGet, "/api/quizzes/7", &util.Claims{UserID: "parent", Role: model.RoleParent})
	ctx.Params = gin.Params{{Key: "id", Value: "7"}}

	qc.GetQuestion(ctx)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQuizController_DeleteQuestionCleansUpImage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock_service.NewMockQuizQuestionStore(ctrl)
	store.EXPECT().FindByID(uint(7)).Return(privateQuestion("parent"), nil)
	store.EXPECT().Delete(uint(7)).Return(nil)

	provider := &recordingProvider{}
	qc := NewQuizController(service.NewQuizService(store), &service.StorageService{Provider: provider})

	ctx, w := newTestContext(t, http.MethodDelete, "/api/quizzes/7", &util.Claims{UserID: "parent", Role: model.RoleParent})
	ctx.Params = gin.Params{{Key: "id", Value: "7"}}

	qc.DeleteQuestion(ctx)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"kanji-7.png"}, provider.deleted)
}

func TestQuizController_DeleteQuestionNotFoundSkipsCleanup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := mock_service.NewMockQuizQuestionStore(ctrl)
	store.EXPECT().FindByID(uint(99)).Return(nil, util.ErrQuestionNotFound)

	provider := &recordingProvider{}
	qc := NewQuizController(service.NewQuizService(store), &service.StorageService{Provider: provider})

	ctx, w := newTestContext(t, http.MethodDelete, "/api/quizzes/99", &util.Claims{UserID: "parent", Role: model.RoleParent})
	ctx.Params = gin.Params{{Key: "id", Value: "99"}}

	qc.DeleteQuestion(ctx)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, provider.deleted)
}
