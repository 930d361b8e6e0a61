package main

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// memoryCatalogStorage serves the static catalog out of process memory.
// The collection is copied once at construction and never mutated, so
// every query is a pure scan safe for any number of concurrent readers.
type memoryCatalogStorage struct {
	logger  *zap.Logger
	books   []Book
	reviews []Review
}

// NewMemoryCatalogStorage provides an instance of in-memory catalog storage.
func NewMemoryCatalogStorage(logger *zap.Logger, books []Book, reviews []Review) CatalogStorage {
	cs := &memoryCatalogStorage{
		logger:  logger,
		books:   make([]Book, len(books)),
		reviews: make([]Review, len(reviews)),
	}
	copy(cs.books, books)
	copy(cs.reviews, reviews)
	return cs
}

// GetOne retrieves a book record based on its ID.
func (cs *memoryCatalogStorage) GetOne(_ context.Context, id string) (Book, error) {
	for _, book := range cs.books {
		if book.ID == id {
			return book, nil
		}
	}
	return Book{}, ErrBookNotFound
}

// GetAll retrieves the full catalog in collection order.
func (cs *memoryCatalogStorage) GetAll(_ context.Context) ([]Book, error) {
	books := make([]Book, len(cs.books))
	copy(books, cs.books)
	return books, nil
}

// GetFeatured retrieves the featured subset, preserving collection order.
func (cs *memoryCatalogStorage) GetFeatured(_ context.Context) ([]Book, error) {
	books := []Book{}
	for _, book := range cs.books {
		if book.Featured {
			books = append(books, book)
		}
	}
	return books, nil
}

// Filter retrieves the books matching all three query predicates, in
// collection order. Text matches title or author case-insensitively,
// selected genres combine with OR, price bounds are inclusive.
func (cs *memoryCatalogStorage) Filter(_ context.Context, query CatalogQuery) ([]Book, error) {
	books := []Book{}
	for _, book := range cs.books {
		if matchesText(book, query.Text) && matchesGenres(book, query.Genres) && matchesPrice(book, query) {
			books = append(books, book)
		}
	}
	return books, nil
}

func matchesText(book Book, text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(book.Title), needle) ||
		strings.Contains(strings.ToLower(book.Author), needle)
}

func matchesGenres(book Book, genres []string) bool {
	if len(genres) == 0 {
		return true
	}
	for _, selected := range genres {
		for _, genre := range book.Genre {
			if genre == selected {
				return true
			}
		}
	}
	return false
}

func matchesPrice(book Book, query CatalogQuery) bool {
	if book.Price.LessThan(query.PriceMin) {
		return false
	}
	if query.PriceMaxSet && book.Price.GreaterThan(query.PriceMax) {
		return false
	}
	return true
}

// Genres retrieves the deduplicated union of all genre labels,
// lexicographically sorted.
func (cs *memoryCatalogStorage) Genres(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	genres := []string{}
	for _, book := range cs.books {
		for _, genre := range book.Genre {
			if _, ok := seen[genre]; ok {
				continue
			}
			seen[genre] = struct{}{}
			genres = append(genres, genre)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

// Reviews retrieves the reviews attached to a given book id.
func (cs *memoryCatalogStorage) Reviews(_ context.Context, bookID string) ([]Review, error) {
	reviews := []Review{}
	for _, review := range cs.reviews {
		if review.BookID == bookID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}
