package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/meter-console/internal/app"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/utils"
	"github.com/MKhiriev/meter-console/models"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.SignIn(ctx, credentials)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", int64(session.User.UserID)).Msg("user successfully signed in")
	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Session{AccessToken: session.AccessToken}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}
