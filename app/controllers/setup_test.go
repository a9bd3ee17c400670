package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/app/middleware"
	"inkwell/app/repositories/mock"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router   *mux.Router
	posts    *services.PostService
	comments *services.CommentService
	users    *services.UserService
}

func setupTestEnv(t *testing.T) *testEnv {
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	userRepo := mock.NewUserRepository()
	sessionRepo := mock.NewSessionRepository()

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	userService := services.NewUserService(userRepo, sessionRepo, postRepo)

	pc := NewPostController(postService, 10)
	cc := NewCommentController(commentService)
	ac := NewAuthController(userService, "inkwell_session")

	router := mux.NewRouter()
	router.Use(middleware.ResolvePrincipal(userService, "inkwell_session", zerolog.Nop()))

	router.HandleFunc("/", pc.Index).Methods("GET")
	router.HandleFunc("/post/new", pc.Create).Methods("POST")
	router.HandleFunc("/post/{id:[0-9]+}", pc.Show).Methods("GET")
	router.HandleFunc("/post/{postId:[0-9]+}/comment", cc.Create).Methods("POST")
	router.HandleFunc("/post/{postId:[0-9]+}/comments", cc.Index).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}/manage", pc.Manage).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}/manage/{action}", pc.Action).Methods("POST")
	router.HandleFunc("/post/{id:[0-9]+}/edit", pc.Update).Methods("PUT")
	router.HandleFunc("/my/{status}", pc.MyPosts).Methods("GET")
	router.HandleFunc("/archive", pc.ArchiveIndex).Methods("GET")
	router.HandleFunc("/archive/{id:[0-9]+}", pc.ArchiveShow).Methods("GET")
	router.HandleFunc("/recent/posts", pc.Recent).Methods("GET")
	router.HandleFunc("/recent/comments", cc.Recent).Methods("GET")
	router.HandleFunc("/register", ac.Register).Methods("POST")
	router.HandleFunc("/login", ac.Login).Methods("POST")
	router.HandleFunc("/logout", ac.Logout).Methods("POST")
	router.HandleFunc("/account", ac.Delete).Methods("DELETE")

	return &testEnv{
		router:   router,
		posts:    postService,
		comments: commentService,
		users:    userService,
	}
}

// signup registers a user and returns their session cookie.
func (env *testEnv) signup(t *testing.T, username string) *http.Cookie {
	w := env.do(t, "POST", "/register", map[string]string{
		"username": username,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, "POST", "/login", map[string]string{
		"username": username,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "inkwell_session" {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// do performs a request against the test router.
func (env *testEnv) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}
