package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Dashboard
	api.HandleFunc("/universe", handler.GetUniverse).Methods("GET")
	api.HandleFunc("/instruments/{ticker}", handler.GetInstrument).Methods("GET")
	api.HandleFunc("/sectors", handler.GetSectors).Methods("GET")
	api.HandleFunc("/groups", handler.GetGroups).Methods("GET")

	// Favorites
	api.HandleFunc("/favorites", handler.GetFavorites).Methods("GET")
	api.HandleFunc("/favorites/{ticker}", handler.ToggleFavorite).Methods("POST")

	// Portfolio
	api.HandleFunc("/portfolio", handler.GetPortfolio).Methods("GET")
	api.HandleFunc("/portfolio/transactions", handler.AddTransaction).Methods("POST")
	api.HandleFunc("/portfolio/{ticker}", handler.RemovePosition).Methods("DELETE")
	api.HandleFunc("/portfolio/{ticker}/trades", handler.GetTrades).Methods("GET")

	return r
}
