package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/testutil"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/validation"
)

func decodeError(t *testing.T, body []byte) validation.ErrorResponse {
	t.Helper()

	var resp validation.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v, body=%s", err, body)
	}
	return resp
}

func TestCreateBook_ThenList(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/livros",
		`{"google_api_id":"teste123","titulo":"Livro de Teste","autor":"Autor Teste","ano_publicacao":"2025"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var created Book
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if created.ID == 0 {
		t.Errorf("expected non-zero id")
	}
	if created.Rating != nil {
		t.Errorf("expected no rating on a new book, got %d", *created.Rating)
	}

	w = doRequest(t, router, http.MethodGet, "/api/livros", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var list []Book
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to unmarshal list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 book, got %d", len(list))
	}
	if list[0].Title != "Livro de Teste" {
		t.Errorf("expected titulo %q, got %q", "Livro de Teste", list[0].Title)
	}
	if list[0].Author == nil || *list[0].Author != "Autor Teste" {
		t.Errorf("expected autor %q, got %v", "Autor Teste", list[0].Author)
	}
}

func TestCreateBook_Duplicate_Returns409(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	testutil.SeedBook(t, db, "dup-1", "Primeiro", nil)

	w := doRequest(t, router, http.MethodPost, "/api/livros",
		`{"google_api_id":"dup-1","titulo":"Outro titulo"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decodeError(t, w.Body.Bytes())
	if resp.Code != "BOOK_ALREADY_SAVED" {
		t.Errorf("expected code BOOK_ALREADY_SAVED, got %q", resp.Code)
	}
	if resp.Message != "Este livro (google_api_id) já foi salvo." {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if n := testutil.CountBooks(t, db); n != 1 {
		t.Errorf("expected 1 stored book, got %d", n)
	}
}

func TestCreateBook_MissingFields_Returns400(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	cases := map[string]string{
		"missing titulo":        `{"google_api_id":"x1"}`,
		"missing google_api_id": `{"titulo":"Sem id"}`,
		"empty body":            ``,
		"malformed json":        `{"titulo":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/livros", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}
		})
	}

	if n := testutil.CountBooks(t, db); n != 0 {
		t.Errorf("expected no stored books, got %d", n)
	}
}

func TestCreateBook_FieldErrorsUseJSONNames(t *testing.T) {
	router := setupRouterWithRepo(&fakeBookRepo{})

	w := doRequest(t, router, http.MethodPost, "/api/livros", `{"google_api_id":"x1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	resp := decodeError(t, w.Body.Bytes())
	if resp.Code != "VALIDATION_FAILED" {
		t.Errorf("expected code VALIDATION_FAILED, got %q", resp.Code)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "titulo" {
		t.Errorf("expected one error on field titulo, got %+v", resp.Errors)
	}
}

func TestCreateBook_BlankRequiredFields_Returns400(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	cases := map[string]string{
		"blank titulo":        `{"google_api_id":"ws1","titulo":"   "}`,
		"blank google_api_id": `{"google_api_id":"  ","titulo":"Titulo"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/livros", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}
			if resp := decodeError(t, w.Body.Bytes()); resp.Code != "INVALID_BOOK" {
				t.Errorf("expected code INVALID_BOOK, got %q", resp.Code)
			}
		})
	}

	if n := testutil.CountBooks(t, db); n != 0 {
		t.Errorf("expected no stored books, got %d", n)
	}
}

func TestCreateBook_BlankCover_StoredAsNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/livros",
		`{"google_api_id":"ws3","titulo":"Sem capa","url_capa":"  "}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Book
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.CoverURL != nil {
		t.Errorf("expected url_capa null, got %q", *resp.CoverURL)
	}
}

func TestCreateBook_InvalidCover_MessageUsesJSONName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doRequest(t, router, http.MethodPost, "/api/livros",
		`{"google_api_id":"ws4","titulo":"Capa ruim","url_capa":"not a url"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decodeError(t, w.Body.Bytes())
	if !strings.Contains(resp.Message, "url_capa") || strings.Contains(resp.Message, "CoverURL") {
		t.Errorf("expected message keyed by url_capa, got %q", resp.Message)
	}
}

func TestCreateBook_InternalError_Returns500(t *testing.T) {
	repo := &fakeBookRepo{
		CreateFn: func(ctx context.Context, b *model.Book) error {
			return errors.New("forced create error")
		},
	}
	router := setupRouterWithRepo(repo)

	w := doRequest(t, router, http.MethodPost, "/api/livros", `{"google_api_id":"x1","titulo":"T"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decodeError(t, w.Body.Bytes())
	if resp.Code != "BOOK_CREATE_FAILED" {
		t.Errorf("expected code BOOK_CREATE_FAILED, got %q", resp.Code)
	}
	if resp.Message != "Erro ao salvar no banco" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestListBooks_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doRequest(t, router, http.MethodGet, "/api/livros", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected empty JSON array, got %s", w.Body.String())
	}
}

func TestListBooks_OrderedByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	first := testutil.SeedBook(t, db, "g1", "Primeiro", nil)
	second := testutil.SeedBook(t, db, "g2", "Segundo", testutil.Ptr(3))

	w := doRequest(t, router, http.MethodGet, "/api/livros", "")

	var list []Book
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to unmarshal list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 books, got %d", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Errorf("expected ids [%d %d], got [%d %d]", first.ID, second.ID, list[0].ID, list[1].ID)
	}
	if list[1].Rating == nil || *list[1].Rating != 3 {
		t.Errorf("expected second rating 3, got %v", list[1].Rating)
	}
}

func TestListBooks_InternalError_Returns500(t *testing.T) {
	router := setupRouter(testutil.NewEmptyDB(t))

	w := doRequest(t, router, http.MethodGet, "/api/livros", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if resp := decodeError(t, w.Body.Bytes()); resp.Code != "BOOK_LIST_FAILED" {
		t.Errorf("expected code BOOK_LIST_FAILED, got %q", resp.Code)
	}
}

func TestGetBookByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Encontrado", nil)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"found", "/api/livros/" + itoa(seeded.ID), http.StatusOK, ""},
		{"not found", "/api/livros/9999", http.StatusNotFound, "BOOK_NOT_FOUND"},
		{"non numeric", "/api/livros/abc", http.StatusBadRequest, "INVALID_BOOK_ID"},
		{"zero", "/api/livros/0", http.StatusBadRequest, "INVALID_BOOK_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodGet, tt.path, "")
			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d, body=%s", tt.status, w.Code, w.Body.String())
			}
			if tt.code != "" {
				if resp := decodeError(t, w.Body.Bytes()); resp.Code != tt.code {
					t.Errorf("expected code %s, got %q", tt.code, resp.Code)
				}
			}
		})
	}
}

func TestUpdateBook_SetsRating(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Avaliar", nil)

	w := doRequest(t, router, http.MethodPut, "/api/livros/"+itoa(seeded.ID), `{"avaliacao":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Book
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Rating == nil || *resp.Rating != 4 {
		t.Fatalf("expected rating 4, got %v", resp.Rating)
	}
	if resp.Title != "Avaliar" || resp.GoogleAPIID != "g1" {
		t.Errorf("expected other fields unchanged, got %+v", resp)
	}

	var stored model.Book
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if stored.Rating == nil || *stored.Rating != 4 {
		t.Errorf("expected stored rating 4, got %v", stored.Rating)
	}
}

func TestUpdateBook_NumericString(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Avaliar", nil)

	w := doRequest(t, router, http.MethodPut, "/api/livros/"+itoa(seeded.ID), `{"avaliacao":"5"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateBook_IntegerValuedFloat(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Avaliar", nil)

	w := doRequest(t, router, http.MethodPut, "/api/livros/"+itoa(seeded.ID), `{"avaliacao":4.0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Book
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Rating == nil || *resp.Rating != 4 {
		t.Errorf("expected rating 4, got %v", resp.Rating)
	}
}

func TestUpdateBook_NullClearsRating(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Avaliado", testutil.Ptr(2))

	w := doRequest(t, router, http.MethodPut, "/api/livros/"+itoa(seeded.ID), `{"avaliacao":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var stored model.Book
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if stored.Rating != nil {
		t.Errorf("expected rating cleared, got %d", *stored.Rating)
	}
}

func TestUpdateBook_AbsentRatingLeavesBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Intacto", testutil.Ptr(2))

	w := doRequest(t, router, http.MethodPut, "/api/livros/"+itoa(seeded.ID), `{"titulo":"ignorado"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var stored model.Book
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if stored.Title != "Intacto" {
		t.Errorf("expected titulo unchanged, got %q", stored.Title)
	}
	if stored.Rating == nil || *stored.Rating != 2 {
		t.Errorf("expected rating 2, got %v", stored.Rating)
	}
}

func TestUpdateBook_InvalidRating_Returns400(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "Avaliar", testutil.Ptr(3))

	cases := map[string]string{
		"zero":         `{"avaliacao":0}`,
		"too high":     `{"avaliacao":6}`,
		"negative":     `{"avaliacao":-1}`,
		"text":         `{"avaliacao":"abc"}`,
		"fraction":     `{"avaliacao":4.5}`,
		"bool":         `{"avaliacao":true}`,
		"empty string": `{"avaliacao":""}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPut, "/api/livros/"+itoa(seeded.ID), body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
			}
			if resp := decodeError(t, w.Body.Bytes()); resp.Code != "INVALID_RATING" {
				t.Errorf("expected code INVALID_RATING, got %q", resp.Code)
			}
		})
	}

	var stored model.Book
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatalf("failed to reload book: %v", err)
	}
	if stored.Rating == nil || *stored.Rating != 3 {
		t.Errorf("expected rating to stay 3, got %v", stored.Rating)
	}
}

func TestUpdateBook_NotFound_Returns404(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)

	w := doRequest(t, router, http.MethodPut, "/api/livros/42", `{"avaliacao":4}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateBook_DeletedBetweenFindAndUpdate_Returns404(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return &model.Book{ID: id, GoogleAPIID: "g1", Title: "T"}, nil
		},
		UpdateRatingFn: func(ctx context.Context, id uint, rating *int) (*model.Book, error) {
			return nil, repository.ErrNotFound
		},
	}
	router := setupRouterWithRepo(repo)

	w := doRequest(t, router, http.MethodPut, "/api/livros/1", `{"avaliacao":4}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateBook_InternalError_Returns500(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return &model.Book{ID: id, GoogleAPIID: "g1", Title: "T"}, nil
		},
		UpdateRatingFn: func(ctx context.Context, id uint, rating *int) (*model.Book, error) {
			return nil, errors.New("forced update error")
		},
	}
	router := setupRouterWithRepo(repo)

	w := doRequest(t, router, http.MethodPut, "/api/livros/1", `{"avaliacao":4}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decodeError(t, w.Body.Bytes()); resp.Code != "BOOK_UPDATE_FAILED" {
		t.Errorf("expected code BOOK_UPDATE_FAILED, got %q", resp.Code)
	}
}

func TestDeleteBook_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	seeded := testutil.SeedBook(t, db, "g1", "The Google Story", nil)

	w := doRequest(t, router, http.MethodDelete, "/api/livros/"+itoa(seeded.ID), "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	want := `Livro "The Google Story" foi deletado com sucesso.`
	if resp.Message != want {
		t.Errorf("expected mensagem %q, got %q", want, resp.Message)
	}

	if n := testutil.CountBooks(t, db); n != 0 {
		t.Errorf("expected no stored books, got %d", n)
	}

	w = doRequest(t, router, http.MethodGet, "/api/livros/"+itoa(seeded.ID), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected deleted book to be gone, got %d", w.Code)
	}
}

func TestDeleteBook_NotFound_Returns404(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupRouter(db)
	testutil.SeedBook(t, db, "g1", "Fica", nil)

	w := doRequest(t, router, http.MethodDelete, "/api/livros/9999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decodeError(t, w.Body.Bytes())
	if resp.Message != "Livro não encontrado com este ID." {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if n := testutil.CountBooks(t, db); n != 1 {
		t.Errorf("expected 1 stored book, got %d", n)
	}
}

func TestDeleteBook_InternalError_Returns500(t *testing.T) {
	repo := &fakeBookRepo{
		DeleteFn: func(ctx context.Context, id uint) (*model.Book, error) {
			return nil, errors.New("forced delete error")
		},
	}
	router := setupRouterWithRepo(repo)

	w := doRequest(t, router, http.MethodDelete, "/api/livros/1", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d, body=%s", w.Code, w.Body.String())
	}
	if resp := decodeError(t, w.Body.Bytes()); resp.Code != "BOOK_DELETE_FAILED" {
		t.Errorf("expected code BOOK_DELETE_FAILED, got %q", resp.Code)
	}
}

func TestOptionalRating_Value(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		set     bool
		want    *int
		wantErr bool
	}{
		{"absent", `{}`, false, nil, false},
		{"null", `{"avaliacao":null}`, true, nil, false},
		{"number", `{"avaliacao":3}`, true, testutil.Ptr(3), false},
		{"padded string", `{"avaliacao":" 2 "}`, true, testutil.Ptr(2), false},
		{"integer-valued float", `{"avaliacao":4.0}`, true, testutil.Ptr(4), false},
		{"exponent", `{"avaliacao":5e0}`, true, testutil.Ptr(5), false},
		{"fraction", `{"avaliacao":4.5}`, true, nil, true},
		{"huge", `{"avaliacao":1e300}`, true, nil, true},
		{"text", `{"avaliacao":"dez"}`, true, nil, true},
		{"object", `{"avaliacao":{}}`, true, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateBookRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.Rating.Set != tt.set {
				t.Fatalf("expected Set=%v, got %v", tt.set, req.Rating.Set)
			}
			if !tt.set {
				return
			}

			got, err := req.Rating.Value()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
