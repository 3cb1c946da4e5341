package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/middleware"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

func logError(c *gin.Context, err error) *zerolog.Event {
	return log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath())
}

// parseIDParam reads the :id path parameter as a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"ID de livro inválido",
		)
		return 0, false
	}
	return uint(id), true
}

func toBookResponse(b model.Book) Book {
	return Book{
		ID:              b.ID,
		GoogleAPIID:     b.GoogleAPIID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		CoverURL:        b.CoverURL,
		Rating:          b.Rating,
	}
}

func toBookListResponse(books []model.Book) []Book {
	responses := make([]Book, 0, len(books))
	for _, b := range books {
		responses = append(responses, toBookResponse(b))
	}
	return responses
}
