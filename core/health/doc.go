// Package health provides probe handlers.
//
//	r.Get("/health", health.Status[*router.Context]("AI Microservice", "0.1.0"))
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log, svc.Ready))
//
// Liveness never touches dependencies. Readiness answers 503 when any check
// fails and logs the cause.
package health
