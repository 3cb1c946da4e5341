package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrRatingOutOfRange = errors.New("avaliacao must be between 1 and 5")

// Book is a saved entry of the personal collection. Only Rating changes
// after creation.
type Book struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GoogleAPIID     string    `gorm:"column:google_api_id;size:100;uniqueIndex;not null" json:"google_api_id"`
	Title           string    `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Author          *string   `gorm:"column:autor;size:255" json:"autor"`
	PublicationYear *string   `gorm:"column:ano_publicacao;size:10" json:"ano_publicacao"`
	CoverURL        *string   `gorm:"column:url_capa;size:500" json:"url_capa"`
	Rating          *int      `gorm:"column:avaliacao;check:check_avaliacao_range,avaliacao >= 1 AND avaliacao <= 5" json:"avaliacao"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (Book) TableName() string {
	return "livros"
}

// Normalize trims the text fields and turns blank optionals into nil. It
// must run before Validate so the checked values are the stored ones.
func (b *Book) Normalize() {
	b.GoogleAPIID = strings.TrimSpace(b.GoogleAPIID)
	b.Title = strings.TrimSpace(b.Title)
	b.Author = trimOptional(b.Author)
	b.PublicationYear = trimOptional(b.PublicationYear)
	b.CoverURL = trimOptional(b.CoverURL)
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	b.Normalize()
	return
}

// Validate checks the invariants the table constraints also enforce, so
// bad values are rejected before reaching the database. Errors are keyed
// by the json names.
func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.GoogleAPIID,
			validation.Required.Error("google_api_id is required"),
			validation.Length(1, 100),
		),
		validation.Field(&b.Title,
			validation.Required.Error("titulo is required"),
			validation.Length(1, 255),
		),
		validation.Field(&b.Author, validation.Length(0, 255)),
		validation.Field(&b.PublicationYear, validation.Length(0, 10)),
		validation.Field(&b.CoverURL,
			validation.Length(0, 500),
			is.URL.Error("url_capa must be a valid URL"),
		),
		validation.Field(&b.Rating, validation.By(ratingInRange)),
	)
}

// ozzo's Min/Max treat 0 as empty and skip it, so the range is checked here.
func ratingInRange(value interface{}) error {
	r, _ := value.(*int)
	if r == nil {
		return nil
	}
	if *r < MinRating || *r > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
