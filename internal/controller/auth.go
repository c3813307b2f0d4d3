package controller

import (
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/auth"
	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	*baseController
}

// VerifyJwtAccessToken lets clients check whether their bearer token is still
// valid without hitting any protected resource.
func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "token"), nil)
		return
	}

	claim, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil || claim.Type != constant.JWT_TYPE_ACCESS {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "token"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": claim.User,
	})
}

// RefreshAccessToken exchanges a refresh token for a new token pair. The user
// is re-read from the database so revoked accounts stop refreshing.
func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid refresh token", util.GenerateErrorMessages(err, "refreshToken"), nil)
		return
	}

	claim, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil || claim.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid refresh token", util.GenerateErrorMessages(err, "refreshToken"), nil)
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, claim.User.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "User no longer exists", util.GenerateErrorMessages(err, "user"), nil)
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate tokens", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"accessToken":  *newAccessToken,
		"refreshToken": *newRefreshToken,
	})
}
