package routes

import (
	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SetupRoutes wires repositories, services and controllers on top of the
// given Badger DB and returns the application router.
func SetupRoutes(db *badger.DB, cfg *config.Config, log zerolog.Logger) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	userService := services.NewUserService(userRepo, sessionRepo, postRepo)

	postController := controllers.NewPostController(postService, cfg.PerPage)
	commentController := controllers.NewCommentController(commentService)
	authController := controllers.NewAuthController(userService, cfg.SessionCookie)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.ResolvePrincipal(userService, cfg.SessionCookie, log))

	// Public blog views
	router.HandleFunc("/", postController.Index).Methods("GET")

	posts := router.PathPrefix("/post").Subrouter()
	posts.HandleFunc("/new", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comment", commentController.Create).Methods("POST")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")

	// Owner views
	posts.HandleFunc("/{id:[0-9]+}/manage", postController.Manage).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}/manage/{action}", postController.Action).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/edit", postController.Update).Methods("PUT")
	router.HandleFunc("/my/{status}", postController.MyPosts).Methods("GET")

	// Archive views
	router.HandleFunc("/archive", postController.ArchiveIndex).Methods("GET")
	router.HandleFunc("/archive/{id:[0-9]+}", postController.ArchiveShow).Methods("GET")

	// Recent-activity widgets
	router.HandleFunc("/recent/posts", postController.Recent).Methods("GET")
	router.HandleFunc("/recent/comments", commentController.Recent).Methods("GET")

	// Sessions and accounts
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("POST")
	router.HandleFunc("/account", authController.Delete).Methods("DELETE")

	return router
}
