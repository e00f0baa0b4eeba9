package handlers

import (
	"encoding/json"
	"net/http"

	"mumanager-backend/internal/models"
	"mumanager-backend/internal/services"
	"mumanager-backend/pkg/utils"
)

type ContractHandler struct {
	Service *services.ContractService
}

func NewContractHandler(s *services.ContractService) *ContractHandler {
	return &ContractHandler{Service: s}
}

func (h *ContractHandler) CreateContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contract, err := h.Service.CreateContract(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "contractId")
	if !ok {
		return
	}

	contract, err := h.Service.GetContract(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, contract)
}

// ListByCompany returns the contracts of one company, newest start first
func (h *ContractHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	companyID, ok := pathID(w, r, "companyId")
	if !ok {
		return
	}

	contracts, err := h.Service.ListContracts(r.Context(), userID, companyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "contractId")
	if !ok {
		return
	}

	var req models.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contract, err := h.Service.UpdateContract(r.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "contractId")
	if !ok {
		return
	}

	if err := h.Service.DeleteContract(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Contract deleted"})
}
