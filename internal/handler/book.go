package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/validation"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/livros")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Save a book
// @Description  Save a book picked from the catalog search. google_api_id must be unique.
// @Tags         livros
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to save"
// @Success      201      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Missing or invalid fields"
// @Failure      409      {object}  validation.ErrorResponse   "Book already saved"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book := model.Book{
		GoogleAPIID:     req.GoogleAPIID,
		Title:           req.Title,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		CoverURL:        req.CoverURL,
	}

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateExternalID):
			writeError(c, http.StatusConflict,
				"BOOK_ALREADY_SAVED",
				"Este livro (google_api_id) já foi salvo.",
			)
		case errors.Is(err, repository.ErrInvalidBook):
			writeError(c, http.StatusBadRequest,
				"INVALID_BOOK",
				err.Error(),
			)
		default:
			logError(c, err).Msg("create book failed")
			writeError(c, http.StatusInternalServerError,
				"BOOK_CREATE_FAILED",
				"Erro ao salvar no banco",
			)
		}
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// ListBooks godoc
// @Summary      List saved books
// @Description  Get every saved book, oldest first
// @Tags         livros
// @Produce      json
// @Success      200  {array}   Book
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context())
	if err != nil {
		logError(c, err).Msg("list books failed")
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"Erro ao buscar livros",
		)
		return
	}

	c.JSON(http.StatusOK, toBookListResponse(books))
}

// GetBookByID godoc
// @Summary      Get a saved book
// @Tags         livros
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  Book
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, ok := h.findOr404(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Rate a saved book
// @Description  Only avaliacao can change. Absent key leaves the book as is; null clears the rating.
// @Tags         livros
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "New rating (1-5)"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or rating"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, ok := h.findOr404(c, id)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if !req.Rating.Set {
		c.JSON(http.StatusOK, toBookResponse(*book))
		return
	}

	rating, err := req.Rating.Value()
	if err != nil {
		writeError(c, http.StatusBadRequest,
			"INVALID_RATING",
			"Avaliação deve ser um número",
		)
		return
	}

	updated, err := h.repo.UpdateRating(c.Request.Context(), id, rating)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"Livro não encontrado",
			)
		case errors.Is(err, repository.ErrInvalidRating):
			writeError(c, http.StatusBadRequest,
				"INVALID_RATING",
				fmt.Sprintf("Avaliação deve estar entre %d e %d", model.MinRating, model.MaxRating),
			)
		default:
			logError(c, err).Uint("book_id", id).Msg("update rating failed")
			writeError(c, http.StatusInternalServerError,
				"BOOK_UPDATE_FAILED",
				"Erro ao atualizar",
			)
		}
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*updated))
}

// DeleteBook godoc
// @Summary      Delete a saved book
// @Tags         livros
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"Livro não encontrado com este ID.",
			)
			return
		}

		logError(c, err).Uint("book_id", id).Msg("delete book failed")
		writeError(c, http.StatusInternalServerError,
			"BOOK_DELETE_FAILED",
			"Erro ao deletar o livro",
		)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Livro \"%s\" foi deletado com sucesso.", deleted.Title),
	})
}

func (h *BookHandler) findOr404(c *gin.Context, id uint) (*model.Book, bool) {
	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"Livro não encontrado",
			)
			return nil, false
		}

		logError(c, err).Uint("book_id", id).Msg("fetch book failed")
		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"Erro ao buscar livro",
		)
		return nil, false
	}
	return book, true
}
