package health

import (
	"github.com/dmitrymomot/aiservice/core/handler"
	"github.com/dmitrymomot/aiservice/core/response"
)

// Liveness reports that the process is running. Always "ALIVE" with 200.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// StatusBody is the JSON body written by Status.
type StatusBody struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Status returns a handler that describes the running service:
//
//	{"status": "healthy", "service": "AI Microservice", "version": "0.1.0"}
func Status[C handler.Context](service, version string) handler.HandlerFunc[C] {
	body := StatusBody{Status: "healthy", Service: service, Version: version}
	return func(C) handler.Response {
		return response.JSON(body)
	}
}
