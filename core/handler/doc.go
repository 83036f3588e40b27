// Package handler defines the request-handling contract shared by the
// router, middleware and HTTP handlers.
//
// A HandlerFunc receives a typed Context and returns a Response, a function
// that writes the reply. Handlers never write to the ResponseWriter directly,
// which lets middleware wrap or replace the response before it is rendered:
//
//	func hello[C handler.Context](ctx C) handler.Response {
//		return response.JSON(map[string]bool{"ok": true})
//	}
//
// Middleware wraps handlers; Chain applies a stack in order:
//
//	h := handler.Chain(hello, middleware.RequestID[*router.Context]())
package handler
