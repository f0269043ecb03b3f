package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/meter-console/internal/app"
	"github.com/MKhiriev/meter-console/internal/utils"
)

func (h *Handler) consumption(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.ReportService.Consumption(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) readingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.ReportService.ReadingStats(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) alarms(w http.ResponseWriter, r *http.Request) {
	alarms, err := h.services.ReportService.Alarms(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, alarms, http.StatusOK)
}

func (h *Handler) yearlyStats(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidYear, http.StatusBadRequest)
		return
	}

	stats, err := h.services.ReportService.YearlyStats(r.Context(), year)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}
