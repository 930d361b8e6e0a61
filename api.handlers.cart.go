package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// GetCart serves the current cart lines with their derived totals.
func (api *APIHandler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	cart, err := api.orderService.Cart(r.Context())
	if err != nil {
		api.logger.Error("failed to get cart", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch the cart", cart)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	total := len(cart.Lines)
	resp := GenericResponse(requestID, http.StatusOK, "Cart fetched successfully.", &total, cart)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// AddToCart creates or merges a cart line for the requested book.
func (api *APIHandler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req AddToCartRequest
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeRequestBody(r, &req)
	if err != nil {
		api.logger.Error("failed to add to cart", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to add the book to the cart", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	err = ValidateAddToCartRequestBody(&req)
	if err != nil {
		api.logger.Error("failed to add to cart", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to add the book to the cart", err.Error())
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	line, err := api.orderService.AddToCart(r.Context(), req.ID, req.Quantity)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.id", req.ID), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "book does not exist", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to add to cart", zap.String("book.id", req.ID), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to add the book to the cart", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to add to cart",
		zap.String("book.id", req.ID),
		zap.Int("line.quantity", line.Quantity),
		zap.String("request.id", requestID),
	)
	resp := GenericResponse(requestID, http.StatusCreated, "Book added to the cart successfully.", nil, line)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// UpdateCartLine sets the exact quantity of an existing cart line. An
// invalid quantity or a missing line leaves the cart untouched.
func (api *APIHandler) UpdateCartLine(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req UpdateQuantityRequest
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	err := DecodeRequestBody(r, &req)
	if err != nil {
		api.logger.Error("failed to update cart line", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to update the cart line", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	line, err := api.orderService.SetQuantity(r.Context(), id, req.Quantity)
	if errors.Is(err, ErrInvalidQuantity) {
		api.logger.Error("invalid quantity requested", zap.String("book.id", id), zap.Int("quantity", req.Quantity), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to update the cart line", err.Error())
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if errors.Is(err, ErrLineNotFound) {
		api.logger.Error("cart line does not exist", zap.String("book.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "cart line does not exist", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to update cart line", zap.String("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to update the cart line", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to update cart line",
		zap.String("book.id", id),
		zap.Int("line.quantity", line.Quantity),
		zap.String("request.id", requestID),
	)
	resp := GenericResponse(requestID, http.StatusOK, "Cart line updated successfully.", nil, line)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// RemoveFromCart deletes a cart line. Removal is idempotent.
func (api *APIHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	err := api.orderService.RemoveFromCart(r.Context(), id)
	if err != nil {
		api.logger.Error("failed to remove from cart", zap.String("book.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to remove the book from the cart", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to remove from cart", zap.String("book.id", id), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Book removed from the cart successfully.", nil, EmptyData)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// Checkout snapshots the cart into a pending order and hands it to the
// background processing. The client gets the snapshot right away.
func (api *APIHandler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	order, err := api.orderService.Checkout(r.Context())
	if errors.Is(err, ErrEmptyCart) {
		api.logger.Error("checkout on empty cart", zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "cart is empty", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to checkout", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to checkout", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to checkout",
		zap.String("order.id", order.ID),
		zap.String("order.total", order.Totals.Total.String()),
		zap.String("request.id", requestID),
	)
	resp := GenericResponse(requestID, http.StatusAccepted, "Order placed successfully.", nil, order)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetOrder serves a placed order with its current processing status.
func (api *APIHandler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	if ok := api.idsHandler.IsValid(id, OrderIDPrefix); !ok {
		api.logger.Error("order id provided is not valid", zap.String("order.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "order id provided is not valid", EmptyData)
		if err := WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	order, err := api.orderService.GetOrder(r.Context(), id)
	if errors.Is(err, ErrOrderNotFound) {
		api.logger.Error("order does not exist", zap.String("order.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusNotFound, "order does not exist", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to get order", zap.String("order.id", id), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to fetch the order", EmptyData)
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	resp := GenericResponse(requestID, http.StatusOK, "Order fetched successfully.", nil, order)
	if err = WriteResponse(r.Context(), w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}
