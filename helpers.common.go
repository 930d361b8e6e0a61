package main

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"strings"
)

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrEmptyCart       = errors.New("cart is empty")
)

type (
	ContextKey        string
	missingFieldError string
)

const (
	OrderIDPrefix           string     = "o"
	RequestIDPrefix         string     = "r"
	SessionIDPrefix         string     = "s"
	RequestIDContextKey     ContextKey = "request.id"
	RequestNumberContextKey ContextKey = "request.number"
)

func (m missingFieldError) Error() string {
	return string(m) + " is required"
}

// GetValueFromContext returns the value of a given key in the context
// if this key is not available, it returns an empty string.
func GetValueFromContext(ctx context.Context, contextKey ContextKey) string {
	if val := ctx.Value(contextKey); val != nil {
		return val.(string)
	}
	return ""
}

// GetRequestNumberFromContext returns the request number set in
// the context. if not previously set then it returns 0.
func GetRequestNumberFromContext(ctx context.Context) uint64 {
	if val := ctx.Value(RequestNumberContextKey); val != nil {
		return val.(uint64)
	}
	return 0
}

// AddToCartRequest is the payload to add a book to the cart. A missing
// quantity means one copy.
type AddToCartRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// UpdateQuantityRequest is the payload to set a cart line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AuthRequest is the payload of the mock sign-in/sign-up/reset calls.
type AuthRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DecodeRequestBody is a helper function to read a json request payload.
func DecodeRequestBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("invalid request body")
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// ValidateAddToCartRequestBody checks an add-to-cart payload and fills
// in the default quantity. A negative or zero quantity is rejected
// explicitly rather than clamped so the caller can give user feedback.
func ValidateAddToCartRequestBody(req *AddToCartRequest) error {
	if len(req.ID) == 0 {
		return missingFieldError("id")
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if req.Quantity < 1 {
		return ErrInvalidQuantity
	}

	return nil
}

// ValidateSignInRequestBody checks the mock sign-in payload shape.
func ValidateSignInRequestBody(req *AuthRequest) error {
	if len(req.Email) == 0 {
		return missingFieldError("email")
	}

	if len(req.Password) == 0 {
		return missingFieldError("password")
	}

	return nil
}

// ValidateSignUpRequestBody checks the mock sign-up payload shape. The
// password length rule mirrors the storefront registration form.
func ValidateSignUpRequestBody(req *AuthRequest) error {
	if len(req.Name) == 0 {
		return missingFieldError("name")
	}

	if err := ValidateSignInRequestBody(req); err != nil {
		return err
	}

	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	return nil
}

// GetRequestSourceIP helps find the source IP of the caller.
func GetRequestSourceIP(r *http.Request) string {
	// Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip
	}

	// Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		netIP = net.ParseIP(ip)
		if netIP != nil {
			return ip
		}
	}

	// Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return ""
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip
	}
	return ""
}

// IsAppRunningInDocker checks the existence of the .dockerenv
// file at the root directory and returns a boolean result. This
// helps know if the App is running in a docker container or not.
func IsAppRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}
