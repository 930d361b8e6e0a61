package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ParseCatalogQuery extracts the catalog filter predicates from the
// request query string: `q` for text, repeatable `genre`, `price_min`
// and `price_max` as inclusive decimal bounds.
func ParseCatalogQuery(r *http.Request) (CatalogQuery, error) {
	values := r.URL.Query()
	query := CatalogQuery{
		Text:   values.Get("q"),
		Genres: values["genre"],
	}

	if raw := values.Get("price_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return query, errors.New("price_min is not a valid amount")
		}
		query.PriceMin = min
	}

	if raw := values.Get("price_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return query, errors.New("price_max is not a valid amount")
		}
		query.PriceMax = max
		query.PriceMaxSet = true
	}

	return query, nil
}

// GetAllBooks serves the catalog, filtered when any of the filter
// query parameters is present.
func (api *APIHandler) GetAllBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	query, err := ParseCatalogQuery(r)
	if err != nil {
		api.logger.Error("failed to parse catalog filters", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to fetch books", err.Error())
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	books, err := api.catalogService.Filter(r.Context(), query)
	if err != nil {
		api.logger.Error("failed to get all books", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch books", books)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to get all books", zap.String("request.id", requestID), zap.Int("books.count", len(books)))
	total := len(books)
	resp := GenericResponse(requestID, http.StatusOK, "Books fetched successfully.", &total, books)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetFeaturedBooks serves the featured subset in collection order.
func (api *APIHandler) GetFeaturedBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	books, err := api.catalogService.GetFeatured(r.Context())
	if err != nil {
		api.logger.Error("failed to get featured books", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch featured books", books)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	total := len(books)
	resp := GenericResponse(requestID, http.StatusOK, "Featured books fetched successfully.", &total, books)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetOneBook serves a single book by its id. A miss is an expected
// case (stale links) and maps to 404, never to a failure.
func (api *APIHandler) GetOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	book, err := api.catalogService.GetOne(r.Context(), id)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "book does not exist", book)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to get book", zap.String("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch the book", book)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to get book", zap.String("book.id", id), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Book fetched successfully.", nil, book)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetBookReviews serves the reviews attached to a book.
func (api *APIHandler) GetBookReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	reviews, err := api.catalogService.Reviews(r.Context(), id)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "book does not exist", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to get reviews", zap.String("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch reviews", reviews)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	total := len(reviews)
	resp := GenericResponse(requestID, http.StatusOK, "Reviews fetched successfully.", &total, reviews)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetGenres serves the sorted, deduplicated genre labels.
func (api *APIHandler) GetGenres(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	genres, err := api.catalogService.Genres(r.Context())
	if err != nil {
		api.logger.Error("failed to get genres", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch genres", genres)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	total := len(genres)
	resp := GenericResponse(requestID, http.StatusOK, "Genres fetched successfully.", &total, genres)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}
