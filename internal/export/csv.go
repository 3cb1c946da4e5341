package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
)

// ErrNoRecords is returned by layouts that refuse to produce an empty file.
var ErrNoRecords = errors.New("no books to export")

const ContentType = "text/csv; charset=utf-8"

// Layout describes one CSV rendition of the collection.
type Layout struct {
	Name        string
	Filename    string
	Delimiter   rune
	Columns     []Column
	FailOnEmpty bool
}

type Column struct {
	Header string
	Value  func(b model.Book) string
}

var (
	colID       = func(b model.Book) string { return strconv.FormatUint(uint64(b.ID), 10) }
	colGoogleID = func(b model.Book) string { return b.GoogleAPIID }
	colTitle    = func(b model.Book) string { return b.Title }
	colAuthor   = func(b model.Book) string { return deref(b.Author) }
	colYear     = func(b model.Book) string { return deref(b.PublicationYear) }
	colCover    = func(b model.Book) string { return deref(b.CoverURL) }
	colRating   = func(b model.Book) string {
		if b.Rating == nil {
			return ""
		}
		return strconv.Itoa(*b.Rating)
	}
)

// CollectionLayout is the download offered by the collection page: comma
// separated, labelled header, header-only when nothing is saved.
func CollectionLayout() Layout {
	return Layout{
		Name:      "collection",
		Filename:  "minha_colecao.csv",
		Delimiter: ',',
		Columns: []Column{
			{"ID", colID},
			{"Google_ID", colGoogleID},
			{"Titulo", colTitle},
			{"Autor", colAuthor},
			{"Ano_Publicacao", colYear},
			{"Avaliacao", colRating},
		},
	}
}

// ReportLayout uses the JSON field names as header and refuses to render
// an empty store.
func ReportLayout(delimiter rune) Layout {
	return Layout{
		Name:      "report",
		Filename:  "relatorio_livros.csv",
		Delimiter: delimiter,
		Columns: []Column{
			{"id", colID},
			{"google_api_id", colGoogleID},
			{"titulo", colTitle},
			{"autor", colAuthor},
			{"ano_publicacao", colYear},
			{"url_capa", colCover},
			{"avaliacao", colRating},
		},
		FailOnEmpty: true,
	}
}

func LayoutByName(name string, reportDelimiter rune) (Layout, error) {
	switch name {
	case "collection":
		return CollectionLayout(), nil
	case "report":
		return ReportLayout(reportDelimiter), nil
	}
	return Layout{}, fmt.Errorf("unknown layout %q", name)
}

// Write renders books as CSV into w.
func Write(w io.Writer, books []model.Book, layout Layout) error {
	if layout.FailOnEmpty && len(books) == 0 {
		return ErrNoRecords
	}

	cw := csv.NewWriter(w)
	if layout.Delimiter != 0 {
		cw.Comma = layout.Delimiter
	}

	row := make([]string, len(layout.Columns))
	for i, col := range layout.Columns {
		row[i] = col.Header
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, b := range books {
		for i, col := range layout.Columns {
			row[i] = col.Value(b)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write book %d: %w", b.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Render is Write into a buffer, so callers can send headers only after
// the whole file was produced.
func Render(books []model.Book, layout Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, books, layout); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
