package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

type CreateBookRequest struct {
	GoogleAPIID     string  `json:"google_api_id" binding:"required,max=100" example:"zyTCAlFPjgYC"`
	Title           string  `json:"titulo" binding:"required,max=255" example:"The Google Story"`
	Author          *string `json:"autor" binding:"omitempty,max=255" example:"David A. Vise, Mark Malseed"`
	PublicationYear *string `json:"ano_publicacao" binding:"omitempty,max=10" example:"2005"`
	CoverURL        *string `json:"url_capa" binding:"omitempty,max=500" example:"http://books.google.com/books/content?id=zyTCAlFPjgYC&zoom=1"`
}

type UpdateBookRequest struct {
	Rating OptionalRating `json:"avaliacao" swaggertype:"integer" example:"4"`
}

var errRatingNotInteger = errors.New("avaliacao must be an integer")

// OptionalRating records whether "avaliacao" was present in the body, was
// null, or carried a value. The value may be a JSON number or a numeric
// string; it is parsed later so a wrong type is a 400, not a bind error.
type OptionalRating struct {
	Set  bool
	Null bool
	raw  []byte
}

func (r *OptionalRating) UnmarshalJSON(b []byte) error {
	r.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		r.Null = true
		return nil
	}
	r.raw = append(r.raw[:0], b...)
	return nil
}

// Value returns nil for an explicit null.
func (r OptionalRating) Value() (*int, error) {
	if r.Null {
		return nil, nil
	}

	s := string(bytes.TrimSpace(r.raw))
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(r.raw, &unquoted); err != nil {
			return nil, errRatingNotInteger
		}
		n, err := strconv.Atoi(strings.TrimSpace(unquoted))
		if err != nil {
			return nil, errRatingNotInteger
		}
		return &n, nil
	}

	// A JSON number counts when it has no fractional part, so 4.0 is 4.
	var num json.Number
	if err := json.Unmarshal(r.raw, &num); err != nil {
		return nil, errRatingNotInteger
	}
	if n, err := num.Int64(); err == nil {
		return intRating(n)
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil, errRatingNotInteger
	}
	return intRating(int64(f))
}

func intRating(n int64) (*int, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, errRatingNotInteger
	}
	v := int(n)
	return &v, nil
}

type Book struct {
	ID              uint    `json:"id" example:"1"`
	GoogleAPIID     string  `json:"google_api_id" example:"zyTCAlFPjgYC"`
	Title           string  `json:"titulo" example:"The Google Story"`
	Author          *string `json:"autor" example:"David A. Vise, Mark Malseed"`
	PublicationYear *string `json:"ano_publicacao" example:"2005"`
	CoverURL        *string `json:"url_capa"`
	Rating          *int    `json:"avaliacao" example:"4"`
}

type MessageResponse struct {
	Message string `json:"mensagem" example:"Livro \"The Google Story\" foi deletado com sucesso."`
}
