package routes

import (
	"saude_conecta/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
)

func addContractRoutes(rg *gin.RouterGroup, contractHandler *handlers.ContractHandler, workflowHandler *handlers.WorkflowHandler, signatureHandler *handlers.SignatureHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.GET("/:id/history", contractHandler.GetContractHistory)

		contracts.POST("/:id/submit", workflowHandler.SubmitContract)
		contracts.POST("/:id/approve", workflowHandler.ApproveContract)
		contracts.POST("/:id/reject", workflowHandler.RejectContract)

		contracts.POST("/:id/sign", signatureHandler.SignContract)
	}
}
