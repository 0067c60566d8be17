package routes

import (
	"log"
	"strconv"

	_ "portfolio_studio/docs" // This will be auto-generated
	"portfolio_studio/internal/adapter/http/handlers"
	repository2 "portfolio_studio/internal/adapter/persistence/repository"
	"portfolio_studio/internal/infrastructure/auth"
	"portfolio_studio/internal/infrastructure/config"
	"portfolio_studio/internal/infrastructure/database"
	"portfolio_studio/internal/infrastructure/i18n"
	"portfolio_studio/internal/infrastructure/payments"
	"portfolio_studio/internal/infrastructure/storage"
	"portfolio_studio/internal/usecase"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()
	s3Client := storage.ConnectS3()

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	snapshotRepo := repository2.NewSnapshotDynamoRepository(ddb)
	acceptanceRepo := repository2.NewAcceptanceDynamoRepository(ddb)
	checkoutRepo := repository2.NewCheckoutDynamoRepository(ddb)
	chargeRepo := repository2.NewChargeDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	postRepo := repository2.NewPostDynamoRepository(ddb)
	folderRepo := repository2.NewFolderDynamoRepository(ddb)
	imageRepo := repository2.NewImageDynamoRepository(ddb)
	translationRepo := repository2.NewTranslationCacheDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	tokens := auth.NewJWTSessionTokens(cfg.JWTSecret)
	objectStorage := storage.NewS3ObjectStorage(s3Client, cfg.ImagesBucket, cfg.PublicAssetsBaseURL)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	translator := i18n.NewHTTPTranslator(cfg.TranslateAPIURL, cfg.TranslateAPIKey)
	detector := i18n.NewGeoIPDetector(cfg.GeoIPAPIURL)

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, snapshotRepo)
	accessUseCase := usecase.NewProposalAccessUseCase(proposalRepo, acceptanceRepo, tokens)
	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutRepo, chargeRepo, paymentGateway)
	translationUseCase := usecase.NewTranslationUseCase(translator, translationRepo, detector)
	contentUseCase := usecase.NewContentUseCase(projectRepo, postRepo)
	galleryUseCase := usecase.NewGalleryUseCase(folderRepo, imageRepo, objectStorage)
	userUseCase := usecase.NewUserUseCase(userRepo, tokens)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase, accessUseCase)
	accessHandler := handlers.NewProposalAccessHandler(accessUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	contentHandler := handlers.NewContentHandler(contentUseCase, translationUseCase)
	galleryHandler := handlers.NewGalleryHandler(galleryUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	translationHandler := handlers.NewTranslationHandler(translationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, accessHandler, checkoutHandler, contentHandler, translationHandler, userHandler)
	addAdminRoutes(v1, tokens, proposalHandler, checkoutHandler, contentHandler, galleryHandler, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
