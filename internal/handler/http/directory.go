package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/meter-console/internal/app"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/utils"
	"github.com/MKhiriev/meter-console/models"
)

func (h *Handler) listPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.services.DirectoryService.ListPermissions(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, permissions, http.StatusOK)
}

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.services.DirectoryService.ListRoles(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, roles, http.StatusOK)
}

func (h *Handler) listRolePermissions(w http.ResponseWriter, r *http.Request) {
	links, err := h.services.DirectoryService.ListLinks(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, links, http.StatusOK)
}

func (h *Handler) createRolePermission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateRolePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	link, err := h.services.DirectoryService.CreateLink(r.Context(), request)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, link, http.StatusCreated)
}

func (h *Handler) deleteRolePermission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	linkID, err := models.ParseID(chi.URLParam(r, "linkID"))
	if err != nil {
		log.Err(err).Msg("invalid link id")
		utils.WriteError(w, app.MsgInvalidLinkID, http.StatusBadRequest)
		return
	}

	if err = h.services.DirectoryService.DeleteLink(r.Context(), linkID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
