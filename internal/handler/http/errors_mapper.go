package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/meter-console/internal/app"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidPeriod:           http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrUserIsInactive:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrPermissionDenied:        http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrLinkNotFound:       http.StatusNotFound,
	store.ErrRoleNotFound:       http.StatusUnprocessableEntity,
	store.ErrPermissionNotFound: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes it with the mapped status. Server
// errors are reported with a generic message only.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}
