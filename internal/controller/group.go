package controller

import (
	"errors"
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GroupController struct {
	*baseController
}

func (gc GroupController) GetGroups(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)

	groups, total, err := gc.app.Repository.Group.List(ctx, nil, ctx.Query("query"), page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list groups", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"groups":    groups,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

// GetGroupById returns the group with its roster and diploma coverage
// numbers.
func (gc GroupController) GetGroupById(ctx *gin.Context) {
	groupId := ctx.Param("group_id")

	group, err := gc.app.Repository.Group.GetWithRoster(ctx, nil, groupId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Group not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get group", err, nil)
		return
	}

	withDiploma := 0
	for _, student := range group.Students {
		if student.DiplomaProject != nil {
			withDiploma++
		}
	}
	totalStudents := len(group.Students)
	percentage := 0.0
	if totalStudents > 0 {
		percentage = float64(withDiploma) / float64(totalStudents) * 100
	}

	util.ResponseSuccess(ctx, gin.H{
		"group": group,
		"stats": gin.H{
			"totalStudents":     totalStudents,
			"withDiploma":       withDiploma,
			"withoutDiploma":    totalStudents - withDiploma,
			"diplomaPercentage": percentage,
		},
	})
}

func (gc GroupController) CreateGroup(ctx *gin.Context) {
	var newGroup model.Group
	if err := ctx.ShouldBind(&newGroup); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid group data", util.GenerateErrorMessages(err), nil)
		return
	}

	group, err := gc.app.Repository.Group.Create(ctx, nil, newGroup)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Group with this name already exists", util.GenerateErrorMessages(err, "name"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create group", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"group": group,
	})
}

func (gc GroupController) UpdateGroup(ctx *gin.Context) {
	groupId := ctx.Param("group_id")

	var updates model.Group
	if err := ctx.ShouldBind(&updates); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid group data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := gc.app.Repository.Group.GetById(ctx, nil, groupId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Group not found", err, nil)
		return
	}

	if err := gc.app.Repository.Group.Update(ctx, nil, groupId, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Group with this name already exists", util.GenerateErrorMessages(err, "name"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update group", err, nil)
		return
	}

	group, err := gc.app.Repository.Group.GetById(ctx, nil, groupId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get group", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"group": group,
	})
}

func (gc GroupController) DeleteGroup(ctx *gin.Context) {
	groupId := ctx.Param("group_id")

	if err := gc.app.Repository.Group.Delete(ctx, nil, groupId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete group", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
