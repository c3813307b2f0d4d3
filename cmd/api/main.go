package main

import (
	"github.com/azhuravlev/diplomdocs/internal/ai"
	appcontext "github.com/azhuravlev/diplomdocs/internal/app_context"
	"github.com/azhuravlev/diplomdocs/internal/auth"
	"github.com/azhuravlev/diplomdocs/internal/config"
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/database"
	"github.com/azhuravlev/diplomdocs/internal/env"
	filestorage "github.com/azhuravlev/diplomdocs/internal/file_storage"
	"github.com/azhuravlev/diplomdocs/internal/mailer"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	ratelimiter "github.com/azhuravlev/diplomdocs/internal/rate_limiter"
	"github.com/azhuravlev/diplomdocs/internal/repository"
	"github.com/azhuravlev/diplomdocs/internal/route"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err = v.RegisterValidation("cmin", util.CustomMin); err != nil {
			return
		}
		if err = v.RegisterValidation("cmax", util.CustomMax); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService, s3)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		Analyzer:   ai.NewDemoAnalyzer(),
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/health", _controller.Index.Health)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_OAuth(rApi, _controller.OAuth)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Students(rApi, _controller.Student, _controller.GroupOrder, _middleware)
	route.V1_Groups(rApi, _controller.Group, _middleware)
	route.V1_Supervisors(rApi, _controller.Supervisor, _middleware)
	route.V1_Diplomas(rApi, _controller.Diploma, _controller.Analysis, _middleware)
	route.V1_GroupOrders(rApi, _controller.GroupOrder, _middleware)
	route.V1_Templates(rApi, _controller.Template, _middleware)
	route.V1_Documents(rApi, _controller.Document, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
