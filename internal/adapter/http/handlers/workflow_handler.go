package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "saude_conecta/internal/adapter/http/dto/request"
	response "saude_conecta/internal/adapter/http/dto/response"
	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase"
	"saude_conecta/internal/usecase/interfaces"
	"saude_conecta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// WorkflowHandler handles the role-gated review routes:
// submit, approve and reject.

type WorkflowHandler struct {
	usecase usecase.IApprovalWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IApprovalWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

func (h *WorkflowHandler) SubmitContract(c *gin.Context) {
	h.runTransition(c, h.usecase.Submit)
}

func (h *WorkflowHandler) ApproveContract(c *gin.Context) {
	h.runTransition(c, h.usecase.Approve)
}

func (h *WorkflowHandler) RejectContract(c *gin.Context) {
	h.runTransition(c, h.usecase.Reject)
}

func (h *WorkflowHandler) runTransition(
	c *gin.Context,
	action func(ctx context.Context, cmd usecase.ReviewCommand) (entities.Contract, error),
) {
	var payload request.ReviewActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	contract, err := action(c.Request.Context(), payload.ToCommand(c.Param("id")))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(contract))
}

// mapWorkflowError translates usecase errors into the typed responses of
// the workflow and signature routes. Conflicts are retryable after a
// re-fetch; everything else is terminal for the request.
func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrInvalidExpectedVersion),
		errors.Is(err, usecase.ErrUnknownRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotesTooShort):
		return pkg.NewDomainErrorSimple("NOTES_TOO_SHORT", "Notes must have at least 5 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSuggestedChangesInvalid):
		return pkg.NewDomainErrorSimple("SUGGESTED_CHANGES_NOT_ALLOWED", "suggested_changes is only accepted on legal rejections", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbiddenForRole):
		return pkg.NewDomainErrorSimple("FORBIDDEN_FOR_ROLE", "Role is not entitled to act at this stage", http.StatusForbidden)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Contract was modified concurrently; re-fetch and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action is not defined for the current status", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContractNotApproved):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Contract must be approved before signing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "Contract is already signed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSignTokenRequired), errors.Is(err, usecase.ErrInvalidSignToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Signature token missing or invalid", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCredentialLookup):
		return pkg.NewDomainError("CREDENTIAL_LOOKUP_FAILED", "Credential collaborator unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrStorage):
		log.Printf("[workflow][handler] storage failure err=%v", err)
		return pkg.NewDomainError("STORAGE_ERROR", "Persistence failure, no partial write applied", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
