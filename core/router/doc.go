// Package router provides a generic HTTP router for handler.HandlerFunc
// handlers, built on the go-chi/chi routing tree.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//		router.WithStripSlashes[*router.Context](),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Get("/health", healthHandler)
//	r.Route("/v1", func(r router.Router[*router.Context]) {
//		r.Post("/embed", embedHandler)
//	})
//
//	http.ListenAndServe(":8000", r)
//
// Unknown paths and methods, errors returned by responses and recovered
// panics all go to the error handler. Panics reach it as a PanicError.
// Path parameters use chi syntax ("/items/{id}") and are read with
// ctx.Param("id").
package router
