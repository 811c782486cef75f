package handler

import (
	"errors"
	"log"
	"net/http"

	"outfit_advisor/internal/api/middleware"
	"outfit_advisor/internal/api/view"
	"outfit_advisor/internal/app/service"
	"outfit_advisor/internal/common"

	"github.com/go-chi/chi/v5"
)

// sessionCookie is the cookie jwtauth's Verifier reads tokens from.
const sessionCookie = "jwt"

type AuthHandler struct {
	authService *service.AuthService
	sessionSecs int
}

func NewAuthHandler(authService *service.AuthService, sessionSecs int) *AuthHandler {
	return &AuthHandler{authService: authService, sessionSecs: sessionSecs}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/login", h.loginPage)
	r.Get("/register", h.registerPage)
	r.Post("/login", h.login)
	r.Post("/register", h.register)
	r.Post("/logout", h.logout)
}

func (h *AuthHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "login.html", view.PageData{})
}

func (h *AuthHandler) registerPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "register.html", view.PageData{})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	req := service.RegisterRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		h.fail(w, r, "register.html", err)
		return
	}

	if middleware.WantsJSON(r) {
		common.RespondWithJSON(w, http.StatusCreated, user)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	req := service.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	session, err := h.authService.Login(r.Context(), req)
	if err != nil {
		h.fail(w, r, "login.html", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   h.sessionSecs,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if middleware.WantsJSON(r) {
		common.RespondWithJSON(w, http.StatusOK, session)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// fail reports an auth failure without leaking internals: taxonomy errors map
// to their generic messages, everything else is logged and collapsed.
func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, page string, err error) {
	status := common.HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError || errors.Is(err, common.ErrStoreUnavailable) {
		log.Printf("auth failure on %s: %v", r.URL.Path, err)
	}
	message := common.UserFacingMessage(err)
	if middleware.WantsJSON(r) {
		common.RespondWithError(w, status, message)
		return
	}
	view.Render(w, status, page, view.PageData{Error: message})
}
