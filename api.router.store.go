package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupStoreRoutes injects the public storefront endpoints. The featured
// selection and the genres list live outside the /v1/books subtree since
// the router does not allow static paths conflicting with the :id segment.
func (api *APIHandler) SetupStoreRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	router.GET("/", m.public(api.Index))
	router.GET("/status", m.public(api.Status))

	router.GET("/v1/books", m.public(api.GetAllBooks))
	router.GET("/v1/books/:id", m.public(api.GetOneBook))
	router.GET("/v1/books/:id/reviews", m.public(api.GetBookReviews))
	router.GET("/v1/featured", m.public(api.GetFeaturedBooks))
	router.GET("/v1/genres", m.public(api.GetGenres))

	router.GET("/v1/cart", m.public(api.GetCart))
	router.POST("/v1/cart", m.public(api.AddToCart))
	router.PUT("/v1/cart/:id", m.public(api.UpdateCartLine))
	router.DELETE("/v1/cart/:id", m.public(api.RemoveFromCart))
	router.POST("/v1/checkout", m.public(api.Checkout))
	router.GET("/v1/orders/:id", m.public(api.GetOrder))

	router.GET("/v1/wishlist", m.public(api.GetWishlist))
	router.POST("/v1/wishlist/:id", m.public(api.ToggleWishlist))

	router.POST("/v1/auth/signin", m.public(api.SignIn))
	router.POST("/v1/auth/signup", m.public(api.SignUp))
	router.POST("/v1/auth/reset", m.public(api.ResetPassword))
	return router
}
