package main

import (
	"context"

	"github.com/shopspring/decimal"
)

// Book represents a catalog book entity. Records are created once at
// process start from the sample dataset and never mutated afterwards.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CoverImage  string          `json:"coverImage"`
	Genre       []string        `json:"genre"`
	Rating      float64         `json:"rating"`
	PublishDate string          `json:"publishDate"`
	Pages       int             `json:"pages"`
	ISBN        string          `json:"isbn"`
	Featured    bool            `json:"featured,omitempty"`
}

// Review represents a reader review attached to a book.
type Review struct {
	ID         string `json:"id"`
	BookID     string `json:"bookId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar,omitempty"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Date       string `json:"date"`
}

// CatalogQuery carries the three catalog filter predicates. The zero
// value (empty text, no genres, zero price bounds with MaxPriceSet
// false) matches the entire catalog.
type CatalogQuery struct {
	Text        string
	Genres      []string
	PriceMin    decimal.Decimal
	PriceMax    decimal.Decimal
	PriceMaxSet bool
}

// CatalogStorage defines read-only query operations on the catalog.
// Implementations must be pure and safe for concurrent readers.
type CatalogStorage interface {
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	GetFeatured(ctx context.Context) ([]Book, error)
	Filter(ctx context.Context, query CatalogQuery) ([]Book, error)
	Genres(ctx context.Context) ([]string, error)
	Reviews(ctx context.Context, bookID string) ([]Review, error)
}
