package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// GetWishlist serves the wishlisted books in insertion order.
func (api *APIHandler) GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	books, err := api.orderService.Wishlist(r.Context())
	if err != nil {
		api.logger.Error("failed to get wishlist", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch the wishlist", books)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	total := len(books)
	resp := GenericResponse(requestID, http.StatusOK, "Wishlist fetched successfully.", &total, books)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// ToggleWishlist flips the wishlist membership of a book. The response
// message states the new membership so the client can word its
// notification accordingly.
func (api *APIHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	entry, err := api.orderService.ToggleWishlist(r.Context(), id)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "book does not exist", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to toggle wishlist", zap.String("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to update the wishlist", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	message := "Book removed from the wishlist."
	if entry.Wishlisted {
		message = "Book added to the wishlist."
	}
	api.logger.Info("success to toggle wishlist",
		zap.String("book.id", id),
		zap.Bool("wishlisted", entry.Wishlisted),
		zap.String("request.id", requestID),
	)
	resp := GenericResponse(requestID, http.StatusOK, message, nil, entry)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}
