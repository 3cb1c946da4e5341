package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/catalog"
)

type SearchHandler struct {
	searcher catalog.Searcher
}

func NewSearchHandler(searcher catalog.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/buscar", h.Search)
}

// Search godoc
// @Summary      Search the book catalog
// @Description  Proxies the term to Google Books and returns up to 10 candidates
// @Tags         buscar
// @Produce      json
// @Param        termo  query     string  true  "Free-text search term"
// @Success      200    {array}   model.Candidate
// @Failure      400    {object}  validation.ErrorResponse   "Missing term"
// @Failure      503    {object}  validation.ErrorResponse   "Catalog unavailable"
// @Router       /buscar [get]
func (h *SearchHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("termo"))
	if term == "" {
		writeError(c, http.StatusBadRequest,
			"MISSING_TERM",
			`O parâmetro "termo" é obrigatório`,
		)
		return
	}

	candidates, err := h.searcher.Search(c.Request.Context(), term)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyTerm) {
			writeError(c, http.StatusBadRequest,
				"MISSING_TERM",
				`O parâmetro "termo" é obrigatório`,
			)
			return
		}

		logError(c, err).Str("termo", term).Msg("catalog search failed")
		writeError(c, http.StatusServiceUnavailable,
			"CATALOG_UNAVAILABLE",
			"Erro ao se comunicar com a Google Books API",
		)
		return
	}

	c.JSON(http.StatusOK, candidates)
}
