package handlers

import (
	"errors"
	"net/http"

	request "saude_conecta/internal/adapter/http/dto/request"
	response "saude_conecta/internal/adapter/http/dto/response"
	"saude_conecta/internal/usecase"
	"saude_conecta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles draft ingestion and the read routes
// (detail + approval history).

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract ingests a draft on behalf of the contract-creation flow.
// The engine assigns id, contract number, draft status and version 1.
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.CreateDraft(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContract(contract))
}

// GetContractHistory returns the contract's approval records ordered by
// created_at ascending.
func (h *ContractHandler) GetContractHistory(c *gin.Context) {
	records, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalRecords(records))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractableType),
		errors.Is(err, usecase.ErrInvalidContractableID),
		errors.Is(err, usecase.ErrInvalidValidityWindow),
		errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return mapWorkflowError(err)
	}
}
