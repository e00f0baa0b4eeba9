package handlers

import (
	"net/http"
	"strconv"

	"mumanager-backend/internal/services"
	"mumanager-backend/internal/timeutil"
	"mumanager-backend/pkg/utils"
)

// DashboardHandler serves the dashboard widgets, company id in the path
type DashboardHandler struct {
	Service *services.RevenueService
}

func NewDashboardHandler(s *services.RevenueService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// MonthlyRevenue returns the zero-filled monthly array plus the current
// month snapshot.
func (h *DashboardHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := pathID(w, r, "companyId")
	if !ok {
		return
	}
	year, err := queryYear(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid year")
		return
	}

	months, err := h.Service.Monthly(r.Context(), userID, companyID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	snapshot, err := h.Service.CurrentMonth(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"year":         year,
		"monthly":      months,
		"currentMonth": snapshot,
	})
}

// Ratio returns the status ratio for one month, defaulting to the current one
func (h *DashboardHandler) Ratio(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := pathID(w, r, "companyId")
	if !ok {
		return
	}

	now := timeutil.Now()
	year, err := queryYear(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month := int(now.Month())
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err = strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			utils.Error(w, http.StatusBadRequest, "Invalid month")
			return
		}
	}

	ratio, err := h.Service.MonthStatusRatio(r.Context(), userID, companyID, year, month)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, ratio)
}
