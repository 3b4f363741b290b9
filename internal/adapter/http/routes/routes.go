package routes

import (
	"log"
	"os"
	"strconv"

	_ "saude_conecta/docs" // This will be auto-generated
	"saude_conecta/internal/adapter/http/handlers"
	repository2 "saude_conecta/internal/adapter/persistence/repository"
	"saude_conecta/internal/infrastructure/credentials"
	"saude_conecta/internal/infrastructure/database"
	"saude_conecta/internal/infrastructure/notifications"
	"saude_conecta/internal/usecase"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	contractStore := repository2.NewContractDynamoRepository(ddb)
	approvalLedger := repository2.NewApprovalLedgerDynamoRepository(ddb)

	var dispatcher interfaces.INotificationDispatcher
	webhook, err := notifications.NewWebhookDispatcher(os.Getenv("NOTIFICATIONS_WEBHOOK_URL"), os.Getenv("NOTIFICATIONS_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("Notifications webhook not configured: %v", err)
	} else {
		dispatcher = webhook
	}

	var credentialDirectory interfaces.ICredentialDirectory
	directory, err := credentials.NewHTTPCredentialDirectory(os.Getenv("CREDENTIALS_SERVICE_URL"))
	if err != nil {
		log.Printf("Credential directory not configured: %v", err)
	} else {
		credentialDirectory = directory
	}

	contractUseCase := usecase.NewContractUseCase(contractStore, approvalLedger)
	workflowUseCase := usecase.NewApprovalWorkflowUseCase(contractStore, dispatcher)
	signatureUseCase := usecase.NewSignatureUseCase(contractStore, credentialDirectory, dispatcher)

	contractHandler := handlers.NewContractHandler(contractUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	signatureHandler := handlers.NewSignatureHandler(signatureUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractRoutes(v1, contractHandler, workflowHandler, signatureHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
