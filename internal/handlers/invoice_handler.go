package handlers

import (
	"encoding/json"
	"net/http"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/services"
	"mumanager-backend/pkg/utils"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func NewInvoiceHandler(s *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: s}
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.Service.CreateInvoice(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}

	invoice, err := h.Service.GetInvoice(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, invoice)
}

// ListByCompany returns all invoices of a company with their lines and
// client. An empty set is a 404, matching the read-by-company convention
// elsewhere in the API.
func (h *InvoiceHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := pathID(w, r, "companyId")
	if !ok {
		return
	}

	invoices, err := h.Service.ListInvoices(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(invoices) == 0 {
		utils.Error(w, http.StatusNotFound, "No invoices found for this company")
		return
	}
	utils.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}

	var req models.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.Service.UpdateInvoice(r.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, invoice)
}

// UpdateLines replaces the line set only; the total is recomputed
func (h *InvoiceHandler) UpdateLines(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}

	var req models.UpdateInvoiceLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.Service.UpdateLines(r.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}

	if err := h.Service.DeleteInvoice(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Invoice deleted"})
}

// ListOverdue returns the Sent invoices of a company, oldest first
func (h *InvoiceHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := pathID(w, r, "companyId")
	if !ok {
		return
	}

	invoices, err := h.Service.ListOverdue(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, invoices)
}

// SendReminder dispatches a payment reminder, throttled to one per 48h
func (h *InvoiceHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}

	if err := h.Service.SendReminder(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Reminder sent"})
}

// SendByEmail mails the invoice PDF to the client
func (h *InvoiceHandler) SendByEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "invoiceId")
	if !ok {
		return
	}

	if err := h.Service.SendByEmail(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Invoice sent"})
}
