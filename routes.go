package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snypenet/rate-my-music/middleware"
)

// setupRoutes configures all HTTP routes for the API
func setupRoutes(router *mux.Router, a *app, adminToken string) {
	// Public API
	router.HandleFunc("/search", a.searchHandler).Methods(http.MethodGet)
	router.HandleFunc("/lyrics", a.lyricsHandler).Methods(http.MethodGet)
	router.HandleFunc("/song-summary", a.songSummaryHandler).Methods(http.MethodPost)
	router.HandleFunc("/song-rating", a.songRatingHandler).Methods(http.MethodPost)

	// Health and help endpoints
	router.HandleFunc("/health", a.healthHandler).Methods(http.MethodGet)
	router.HandleFunc("/", helpHandler).Methods(http.MethodGet)

	// Admin endpoints
	adminOnly := middleware.AdminAuthMiddleware(adminToken)
	router.Handle("/stats", adminOnly(http.HandlerFunc(a.statsHandler))).Methods(http.MethodGet)
	router.Handle("/cache", adminOnly(http.HandlerFunc(a.cacheDumpHandler))).Methods(http.MethodGet)
	router.Handle("/cache", adminOnly(http.HandlerFunc(a.cacheDeleteHandler))).Methods(http.MethodDelete)
	router.Handle("/cache/clear", adminOnly(http.HandlerFunc(a.cacheClearHandler))).Methods(http.MethodPost)
}
