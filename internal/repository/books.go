package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
)

var (
	ErrNotFound            = errors.New("book not found")
	ErrDuplicateExternalID = errors.New("book with this google_api_id already saved")
	ErrInvalidRating       = errors.New("invalid rating")
	ErrInvalidBook         = errors.New("invalid book")
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Count(ctx context.Context) (int64, error)
	UpdateRating(ctx context.Context, id uint, rating *int) (*model.Book, error)
	Delete(ctx context.Context, id uint) (*model.Book, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	book.Normalize()
	if err := book.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(book).Error
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// UpdateRating sets or clears (nil) the rating. The row is read and
// written in one transaction; an out-of-range value leaves it untouched.
func (r *GormBookRepository) UpdateRating(ctx context.Context, id uint, rating *int) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		book.Rating = rating
		if err := book.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRating, err)
		}

		result := tx.Model(&book).Update("avaliacao", rating)
		if result.Error != nil {
			return result.Error
		}
		// Deleted by a concurrent transaction after First.
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

// Delete removes the book and returns it as it was before deletion.
func (r *GormBookRepository) Delete(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

// translate maps driver and gorm errors onto the package sentinels. Errors
// that are already sentinels pass through unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrInvalidBook):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateExternalID
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrInvalidRating, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateExternalID
		case "23514":
			return fmt.Errorf("%w: %v", ErrInvalidRating, err)
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") {
		return ErrDuplicateExternalID
	}
	if strings.Contains(msg, "check constraint") {
		return fmt.Errorf("%w: %v", ErrInvalidRating, err)
	}

	return fmt.Errorf("storage: %w", err)
}
