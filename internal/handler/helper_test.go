package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
)

type fakeBookRepo struct {
	CreateFn       func(ctx context.Context, b *model.Book) error
	FindByIDFn     func(ctx context.Context, id uint) (*model.Book, error)
	ListFn         func(ctx context.Context) ([]model.Book, error)
	CountFn        func(ctx context.Context) (int64, error)
	UpdateRatingFn func(ctx context.Context, id uint, rating *int) (*model.Book, error)
	DeleteFn       func(ctx context.Context, id uint) (*model.Book, error)
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) List(ctx context.Context) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return []model.Book{}, nil
}

func (f *fakeBookRepo) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	return 0, nil
}

func (f *fakeBookRepo) UpdateRating(ctx context.Context, id uint, rating *int) (*model.Book, error) {
	if f.UpdateRatingFn != nil {
		return f.UpdateRatingFn(ctx, id, rating)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) (*model.Book, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

type fakeSearcher struct {
	SearchFn func(ctx context.Context, term string) ([]model.Candidate, error)
	calls    int
}

func (f *fakeSearcher) Search(ctx context.Context, term string) ([]model.Candidate, error) {
	f.calls++
	if f.SearchFn != nil {
		return f.SearchFn(ctx, term)
	}
	return []model.Candidate{}, nil
}

func setupRouter(db *gorm.DB) *gin.Engine {
	return setupRouterWithRepo(repository.NewGormBookRepository(db))
}

func setupRouterWithRepo(repo repository.BookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api")
	NewBookHandler(repo).RegisterRoutes(api)
	NewExportHandler(repo, ';').RegisterRoutes(api)

	return r
}

func setupSearchRouter(s *fakeSearcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	NewSearchHandler(s).RegisterRoutes(r.Group("/api"))

	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
