package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	appcontext "github.com/azhuravlev/diplomdocs/internal/app_context"
	"github.com/azhuravlev/diplomdocs/internal/auth"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index      *IndexController
	Auth       *AuthController
	OAuth      *OAuthController
	User       *UserController
	Student    *StudentController
	Group      *GroupController
	Supervisor *SupervisorController
	Diploma    *DiplomaController
	GroupOrder *GroupOrderController
	Template   *TemplateController
	Document   *DocumentController
	Analysis   *AnalysisController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	googleOAuthConfig := &oauth2.Config{
		ClientID:     app.Config.Auth.GoogleOAuthConfig.ClientID,
		ClientSecret: app.Config.Auth.GoogleOAuthConfig.ClientSecret,
		RedirectURL:  app.Config.Auth.GoogleOAuthConfig.RedirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	return &Controller{
		Index:      &IndexController{baseController: bc},
		Auth:       &AuthController{baseController: bc},
		OAuth:      &OAuthController{baseController: bc, googleOAuthConfig: googleOAuthConfig},
		User:       &UserController{baseController: bc},
		Student:    &StudentController{baseController: bc},
		Group:      &GroupController{baseController: bc},
		Supervisor: &SupervisorController{baseController: bc},
		Diploma:    &DiplomaController{baseController: bc},
		GroupOrder: &GroupOrderController{baseController: bc},
		Template:   &TemplateController{baseController: bc},
		Document:   &DocumentController{baseController: bc},
		Analysis:   &AnalysisController{baseController: bc},
	}
}

// getAuthUser resolves the acting user from the auth middleware claim. Every
// mutation receives this identity explicitly.
func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}
