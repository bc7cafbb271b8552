package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"saminams/app/controllers"
	"saminams/app/middleware"
	"saminams/app/repositories"
	"saminams/app/services"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(repo *repositories.ContentRepository, editor *services.EditorService, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(repo, log)
	commentController := controllers.NewCommentController(repo, log)
	editorController := controllers.NewEditorController(editor, repo, log)

	api := router.PathPrefix("/api").Subrouter()

	// Posts
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id}/html", postController.ShowHTML).Methods("GET")

	// Comment threads
	posts.HandleFunc("/{postId}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId}/comments", commentController.Create).Methods("POST")

	// Tags
	api.HandleFunc("/tags", postController.Tags).Methods("GET")

	// Editor draft lifecycle
	editorRoutes := api.PathPrefix("/editor").Subrouter()
	editorRoutes.HandleFunc("/draft", editorController.Draft).Methods("GET")
	editorRoutes.HandleFunc("/draft", editorController.UpdateDraft).Methods("PUT")
	editorRoutes.HandleFunc("/new", editorController.StartNew).Methods("POST")
	editorRoutes.HandleFunc("/edit/{id}", editorController.StartEdit).Methods("POST")
	editorRoutes.HandleFunc("/cancel", editorController.Cancel).Methods("POST")
	editorRoutes.HandleFunc("/commit", editorController.Commit).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
