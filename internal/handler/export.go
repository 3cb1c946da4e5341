package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/export"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
)

type ExportHandler struct {
	repo       repository.BookRepository
	collection export.Layout
	report     export.Layout
}

func NewExportHandler(repo repository.BookRepository, reportDelimiter rune) *ExportHandler {
	return &ExportHandler{
		repo:       repo,
		collection: export.CollectionLayout(),
		report:     export.ReportLayout(reportDelimiter),
	}
}

func (h *ExportHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/livros")
	{
		books.GET("/exportar", h.ExportCollection)
		books.GET("/relatorio/csv", h.ExportReport)
	}
}

// ExportCollection godoc
// @Summary      Download the collection as CSV
// @Description  Comma separated, one row per saved book. An empty collection yields only the header row.
// @Tags         livros
// @Produce      text/csv
// @Success      200  {string}  string  "CSV attachment minha_colecao.csv"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros/exportar [get]
func (h *ExportHandler) ExportCollection(c *gin.Context) {
	h.serve(c, h.collection)
}

// ExportReport godoc
// @Summary      Download the CSV report
// @Description  Field-name header, configurable delimiter (default ';'). Fails with 404 when nothing is saved.
// @Tags         livros
// @Produce      text/csv
// @Success      200  {string}  string  "CSV attachment relatorio_livros.csv"
// @Failure      404  {object}  validation.ErrorResponse   "No books saved"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /livros/relatorio/csv [get]
func (h *ExportHandler) ExportReport(c *gin.Context) {
	h.serve(c, h.report)
}

func (h *ExportHandler) serve(c *gin.Context, layout export.Layout) {
	books, err := h.repo.List(c.Request.Context())
	if err != nil {
		logError(c, err).Str("layout", layout.Name).Msg("export list failed")
		writeError(c, http.StatusInternalServerError,
			"EXPORT_FAILED",
			"Ocorreu um erro interno ao gerar o relatório",
		)
		return
	}

	body, err := export.Render(books, layout)
	if err != nil {
		if errors.Is(err, export.ErrNoRecords) {
			writeError(c, http.StatusNotFound,
				"NO_BOOKS_TO_EXPORT",
				"Nenhum livro encontrado para o relatório",
			)
			return
		}

		logError(c, err).Str("layout", layout.Name).Msg("export render failed")
		writeError(c, http.StatusInternalServerError,
			"EXPORT_FAILED",
			"Ocorreu um erro interno ao gerar o relatório",
		)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+layout.Filename)
	c.Data(http.StatusOK, export.ContentType, body)
}
