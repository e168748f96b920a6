// Package handler is the HTTP layer. Each endpoint binds a request struct,
// validates it, calls one service method and shapes the JSON response.
//
// Endpoints are plain typed functions; Handle wraps them into echo handlers
// that share logging, tracing and error reporting.
package handler
