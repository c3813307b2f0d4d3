package controller

import (
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"service": "diplomdocs api",
	})
}

func (ic IndexController) Health(ctx *gin.Context) {
	sqlDB, err := ic.app.Repository.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		util.ResponseFailed(ctx, http.StatusServiceUnavailable, "Database unreachable", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status": "ok",
	})
}
