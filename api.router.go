package main

import (
	"github.com/julienschmidt/httprouter"
)

// MiddlewareMap contains middlewares chains to
// use for public-facing and ops requests.
type MiddlewareMap struct {
	public func(httprouter.Handle) httprouter.Handle
	ops    func(httprouter.Handle) httprouter.Handle
}

// SetupRoutes injects storefront and ops related endpoints if required.
func (api *APIHandler) SetupRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	router.NotFound = api.NotFound()
	api.SetupStoreRoutes(router, m)
	if api.config.OpsEndpointsEnable {
		api.SetupOpsRoutes(router, m)
	}
	return router
}
