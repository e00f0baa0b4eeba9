package handlers

import (
	"net/http"
	"strconv"
	"time"

	"mumanager-backend/internal/services"
	"mumanager-backend/internal/timeutil"
	"mumanager-backend/pkg/utils"
)

// RevenueHandler serves the revenue analytics endpoints. The company id
// travels in the companyId header; ownership is still checked against the
// authenticated user.
type RevenueHandler struct {
	Service *services.RevenueService
}

func NewRevenueHandler(s *services.RevenueService) *RevenueHandler {
	return &RevenueHandler{Service: s}
}

// headerCompanyID parses the companyId request header
func headerCompanyID(w http.ResponseWriter, r *http.Request) (int, bool) {
	companyID, err := strconv.Atoi(r.Header.Get("companyId"))
	if err != nil || companyID <= 0 {
		utils.Error(w, http.StatusBadRequest, "companyId header is required")
		return 0, false
	}
	return companyID, true
}

// queryYear parses the year query parameter, defaulting to the current year
func queryYear(r *http.Request) (int, error) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return timeutil.Now().Year(), nil
	}
	return strconv.Atoi(yearStr)
}

func (h *RevenueHandler) Total(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}

	total, err := h.Service.Total(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *RevenueHandler) Period(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}

	start, err := time.ParseInLocation(timeutil.DateLayout, r.URL.Query().Get("start"), timeutil.Paris)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "start and end query parameters are required (YYYY-MM-DD)")
		return
	}
	end, err := time.ParseInLocation(timeutil.DateLayout, r.URL.Query().Get("end"), timeutil.Paris)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "start and end query parameters are required (YYYY-MM-DD)")
		return
	}

	total, err := h.Service.Period(r.Context(), userID, companyID, start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *RevenueHandler) ByClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}
	clientID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	total, err := h.Service.ByClient(r.Context(), userID, companyID, clientID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"total": total})
}

func (h *RevenueHandler) Compare(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}

	compare, err := h.Service.Compare(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, compare)
}

func (h *RevenueHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
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
	utils.JSON(w, http.StatusOK, map[string]interface{}{"year": year, "monthly": months})
}

func (h *RevenueHandler) Cumulative(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}
	year, err := queryYear(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid year")
		return
	}

	sums, err := h.Service.Cumulative(r.Context(), userID, companyID, year)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"year": year, "cumulative": sums})
}

func (h *RevenueHandler) Years(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}

	years, err := h.Service.Years(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"years": years})
}

func (h *RevenueHandler) TopClients(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}

	top, err := h.Service.TopClients(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, top)
}

func (h *RevenueHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := headerCompanyID(w, r)
	if !ok {
		return
	}

	ratio, err := h.Service.StatusRatio(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, ratio)
}
