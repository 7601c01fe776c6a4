package routes

import (
	"net/http"

	"pressroom/app/controllers"
	"pressroom/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router,
// using the provided Badger DB.
func SetupRoutes(db *badger.DB) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostControllerWithDB(db)

	// API routes
	api := router.PathPrefix("/api").Subrouter()

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Editorial workflow endpoints
	posts.HandleFunc("/{id:[0-9]+}/append", postController.Append).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/review", postController.Review).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/approve", postController.Approve).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/content", postController.Content).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}/revisions", postController.Revisions).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
