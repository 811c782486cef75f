package handler

import (
	"log"
	"net/http"

	"outfit_advisor/internal/api/middleware"
	"outfit_advisor/internal/api/view"
	"outfit_advisor/internal/app/service"
	"outfit_advisor/internal/common"
	"outfit_advisor/internal/common/security"
	"outfit_advisor/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type RecommendHandler struct {
	recommendations *service.RecommendationService
}

func NewRecommendHandler(rs *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{recommendations: rs}
}

func (h *RecommendHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Post("/recommend", h.recommend)
	})
}

// index renders the questionnaire for logged-in users and entry links for
// everyone else. The Verifier has already parsed any session cookie.
func (h *RecommendHandler) index(w http.ResponseWriter, r *http.Request) {
	data := view.PageData{}
	if token, claims, err := jwtauth.FromContext(r.Context()); err == nil && token != nil {
		if username, err := security.GetUsernameFromClaims(claims); err == nil {
			data.Username = username
		}
	}
	view.Render(w, http.StatusOK, "index.html", data)
}

func (h *RecommendHandler) recommend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	req := model.OutfitRequest{
		Color:     r.PostFormValue("color"),
		Gender:    r.PostFormValue("gender"),
		TopBottom: r.PostFormValue("top_bottom"),
		Occasion:  r.PostFormValue("occasion"),
		Style:     r.PostFormValue("style"),
		Age:       r.PostFormValue("age"),
	}

	recommendation, err := h.recommendations.Recommend(r.Context(), userID, req)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Printf("recommendation failed: %v", err)
		}
		message := common.UserFacingMessage(err)
		if middleware.WantsJSON(r) {
			common.RespondWithError(w, status, message)
			return
		}
		username, _ := middleware.GetUsernameFromContext(r.Context())
		view.Render(w, status, "index.html", view.PageData{Username: username, Error: message})
		return
	}

	if middleware.WantsJSON(r) {
		common.RespondWithJSON(w, http.StatusOK, recommendation)
		return
	}
	view.Render(w, http.StatusOK, "recommendation.html", view.PageData{
		Request:        &req,
		Recommendation: recommendation,
	})
}
