package appcontext

import (
	"github.com/azhuravlev/diplomdocs/internal/ai"
	"github.com/azhuravlev/diplomdocs/internal/auth"
	"github.com/azhuravlev/diplomdocs/internal/config"
	"github.com/azhuravlev/diplomdocs/internal/mailer"
	"github.com/azhuravlev/diplomdocs/internal/repository"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// Analyzer runs diploma file checks. The demo analyzer is wired unless a
	// real provider is configured.
	Analyzer ai.Analyzer

	S3 *minio.Client
}
