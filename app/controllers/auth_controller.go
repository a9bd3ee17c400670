package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/services"
)

// AuthController handles account registration and sessions
type AuthController struct {
	userService *services.UserService
	cookieName  string
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, cookieName string) *AuthController {
	return &AuthController{
		userService: userService,
		cookieName:  cookieName,
	}
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles creating a new author account
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := ac.userService.Register(payload.Username, payload.Password)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, user)
}

// Login handles opening a session
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := ac.userService.Login(payload.Username, payload.Password)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ac.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	sendJSON(w, http.StatusOK, user)
}

// Logout handles closing the current session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(ac.cookieName); err == nil {
		if err := ac.userService.Logout(cookie.Value); err != nil {
			sendError(w, "Failed to log out: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ac.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles removing the authenticated account. The account's posts
// survive with their author reference cleared.
func (ac *AuthController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ac.userService.DeleteAccount(middleware.Principal(r)); err != nil {
		sendServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
