package handlers

import (
	"log"
	"net/http"

	request "saude_conecta/internal/adapter/http/dto/request"
	response "saude_conecta/internal/adapter/http/dto/response"
	"saude_conecta/internal/usecase"
	"saude_conecta/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSignPayload = pkg.NewDomainErrorSimple("INVALID_SIGN_INPUT", "Invalid sign payload", http.StatusBadRequest)

// SignatureHandler handles the one-time terminal signing route.

type SignatureHandler struct {
	usecase usecase.ISignatureUseCase
}

func NewSignatureHandler(uc usecase.ISignatureUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

func (h *SignatureHandler) SignContract(c *gin.Context) {
	contractID := c.Param("id")

	var payload request.SignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignPayload.HTTPStatus, errInvalidSignPayload.ToHTTPError())
		return
	}

	contract, err := h.usecase.Sign(c.Request.Context(), payload.ToCommand(contractID))
	if err != nil {
		log.Printf("[signature][handler] sign failed contract_id=%s err=%v", contractID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSignedContract(contract))
}
