// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /reports", middleware.WithLogging(handler))

Logs request completion with method, path, status and duration_ms.
Responses with a 5xx status are logged at warn level.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin)(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "report not found")
	err := middleware.ParseJSONBody(r, &payload)
*/
package middleware
