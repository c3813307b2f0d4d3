package controller

import (
	"errors"
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupervisorController struct {
	*baseController
}

func (sc SupervisorController) GetSupervisors(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)

	supervisors, total, err := sc.app.Repository.Supervisor.List(ctx, nil, ctx.Query("query"), page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list supervisors", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supervisors": supervisors,
		"total":       total,
		"page":        page,
		"pageSize":    pageSize,
		"totalPage":   util.CalculateTotalPage(total, pageSize),
	})
}

func (sc SupervisorController) GetSupervisorById(ctx *gin.Context) {
	supervisorId := ctx.Param("supervisor_id")

	supervisor, err := sc.app.Repository.Supervisor.GetById(ctx, nil, supervisorId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Supervisor not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get supervisor", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supervisor": supervisor,
	})
}

func (sc SupervisorController) CreateSupervisor(ctx *gin.Context) {
	var newSupervisor model.Supervisor
	if err := ctx.ShouldBind(&newSupervisor); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid supervisor data", util.GenerateErrorMessages(err), nil)
		return
	}

	supervisor, err := sc.app.Repository.Supervisor.Create(ctx, nil, newSupervisor)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create supervisor", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supervisor": supervisor,
	})
}

func (sc SupervisorController) UpdateSupervisor(ctx *gin.Context) {
	supervisorId := ctx.Param("supervisor_id")

	var updates model.Supervisor
	if err := ctx.ShouldBind(&updates); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid supervisor data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := sc.app.Repository.Supervisor.GetById(ctx, nil, supervisorId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Supervisor not found", err, nil)
		return
	}

	if err := sc.app.Repository.Supervisor.Update(ctx, nil, supervisorId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update supervisor", err, nil)
		return
	}

	supervisor, err := sc.app.Repository.Supervisor.GetById(ctx, nil, supervisorId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get supervisor", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"supervisor": supervisor,
	})
}

func (sc SupervisorController) DeleteSupervisor(ctx *gin.Context) {
	supervisorId := ctx.Param("supervisor_id")

	if err := sc.app.Repository.Supervisor.Delete(ctx, nil, supervisorId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete supervisor", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
