package api

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/controllers"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/transport"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/auth"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/sheets"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage: JSON files locally, DynamoDB behind the Lambda.
	var (
		configStorage  storage.EventConfigStorage
		pinStorage     storage.PinStorage
		sessionStorage storage.SessionStorage
	)
	if os.Getenv("APP_ENV") == "local" {
		configStorage = &storage.FileEventConfigStorage{Path: s.config.ConfigFile}
		pinStorage = &storage.FilePinStorage{Path: s.config.PinsFile}
		sessionStorage = &storage.FileSessionStorage{Path: s.config.SessionsFile}
	} else {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			panic("failed to load AWS config")
		}
		dynamoClient := dynamodb.NewFromConfig(cfg)

		configStorage = &storage.DynamoEventConfigStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameEventConfigs,
		}
		pinStorage = &storage.DynamoPinStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNamePins,
		}
		sessionStorage = &storage.DynamoSessionStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameSessions,
		}
	}

	// Sheet source + cache
	source := &sheets.GoogleSheetsSource{CredentialsPath: s.config.CredentialsPath}
	cache := sheets.NewCache(source,
		sheets.ExtractSheetID(s.config.DefaultSheet),
		time.Duration(s.config.CacheTTLSeconds)*time.Second)

	//Register controllers
	authController := controllers.NewAuthController(auth.NewUserStore(), sessionStorage)
	authController.RegisterRoutes(r)
	eventsController := controllers.NewEventsController(cache, pinStorage, sessionStorage)
	eventsController.RegisterRoutes(r)
	analyticsController := controllers.NewAnalyticsController(cache, configStorage, sessionStorage)
	analyticsController.RegisterRoutes(r)
	settingsController := controllers.NewSettingsController(configStorage, sessionStorage)
	settingsController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
