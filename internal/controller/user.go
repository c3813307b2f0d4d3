package controller

import (
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	*baseController
}

func (uc UserController) GetUserById(ctx *gin.Context) {
	userId := ctx.Param("user_id")
	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

// Me returns the account of the authenticated caller.
func (uc UserController) Me(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}
