package controller

import (
	"errors"
	"net/http"

	"github.com/azhuravlev/diplomdocs/internal/auth"
	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiplomaController struct {
	*baseController
}

func (dc DiplomaController) GetDiplomaById(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	diploma, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get diploma project", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"diploma": diploma,
	})
}

func (dc DiplomaController) CreateDiploma(ctx *gin.Context) {
	var newDiploma model.DiplomaProject
	if err := ctx.ShouldBind(&newDiploma); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid diploma project data", util.GenerateErrorMessages(err), nil)
		return
	}

	diploma, err := dc.app.Repository.DiplomaProject.Create(ctx, nil, newDiploma)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Student already has a diploma project", util.GenerateErrorMessages(err, "studentId"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create diploma project", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"diploma": diploma,
	})
}

func (dc DiplomaController) UpdateDiploma(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	var updates model.DiplomaProject
	if err := ctx.ShouldBind(&updates); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid diploma project data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
		return
	}

	if err := dc.app.Repository.DiplomaProject.Update(ctx, nil, diplomaId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update diploma project", err, nil)
		return
	}

	diploma, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get diploma project", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"diploma": diploma,
	})
}

func (dc DiplomaController) UpdateDiplomaStatus(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	var body struct {
		Status constant.DiplomaStatus `json:"status" form:"status" binding:"required"`
	}
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Status is required", util.GenerateErrorMessages(err, "status"), nil)
		return
	}

	if !body.Status.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown diploma status", nil, gin.H{"status": body.Status})
		return
	}

	if _, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
		return
	}

	if err := dc.app.Repository.DiplomaProject.UpdateStatus(ctx, nil, diplomaId, body.Status); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update status", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"status": body.Status,
	})
}

func (dc DiplomaController) DeleteDiploma(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	if err := dc.app.Repository.DiplomaProject.Delete(ctx, nil, diplomaId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete diploma project", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// canManageDiplomaFile reports whether the user may touch the work file:
// staff always, a student only on their own project.
func canManageDiplomaFile(authUser *auth.JWTPayload, diploma *model.DiplomaProject) bool {
	if authUser.IsStaff {
		return true
	}
	return diploma.Student != nil && diploma.Student.UserID == authUser.ID
}

// UploadDiplomaFile replaces the stored work file. A new upload resets any
// previous analysis since it was produced for the old file.
func (dc DiplomaController) UploadDiplomaFile(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	diploma, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
		return
	}

	if !canManageDiplomaFile(authUser, diploma) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this file", nil, nil)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File is required", util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	if err := util.ValidateUploadedFile(fileHeader, constant.MaxDiplomaFileSize, constant.AllowedDiplomaFileExtensions); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, err.Error(), util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetDiplomaDirectoryPath(diplomaId),
		UniquePrefix:  true,
		Bucket:        dc.app.Config.Minio.BUCKET,
		S3:            dc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store file", err, nil)
		return
	}

	file, err := dc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Size:           info.Size,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save file record", err, nil)
		return
	}

	if err := dc.app.Repository.DiplomaProject.SetFile(ctx, nil, diplomaId, file.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to link file", err, nil)
		return
	}

	if diploma.File != nil {
		if err := diploma.File.Delete(ctx, dc.app.S3); err != nil {
			dc.app.Logger.Warnf("Failed to remove previous diploma object: %v", err)
		}
		if err := dc.app.Repository.File.Delete(ctx, nil, diploma.File.ID); err != nil {
			dc.app.Logger.Warnf("Failed to remove previous diploma file record: %v", err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"file": file,
	})
}

// DownloadDiplomaFile hands out a presigned URL. Staff can fetch any work,
// a student only their own.
func (dc DiplomaController) DownloadDiplomaFile(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	diploma, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
		return
	}

	if diploma.File == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project has no uploaded file", nil, nil)
		return
	}

	if !canManageDiplomaFile(authUser, diploma) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this file", nil, nil)
		return
	}

	url, err := diploma.File.ToPresignedUrl(ctx, dc.app.S3)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate download link", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"url":      url,
		"fileName": diploma.File.ToBaseFilename(),
		"size":     diploma.File.Size,
	})
}

func (dc DiplomaController) DeleteDiplomaFile(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	diploma, err := dc.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
		return
	}

	if !canManageDiplomaFile(authUser, diploma) {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have access to this file", nil, nil)
		return
	}

	if diploma.File == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project has no uploaded file", nil, nil)
		return
	}

	// Unlinks the file and drops the stale analysis in one transaction.
	if err := dc.app.Repository.DiplomaProject.ClearFile(ctx, nil, diplomaId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to unlink file", err, nil)
		return
	}

	if err := diploma.File.Delete(ctx, dc.app.S3); err != nil {
		dc.app.Logger.Warnf("Failed to remove diploma object: %v", err)
	}
	if err := dc.app.Repository.File.Delete(ctx, nil, diploma.File.ID); err != nil {
		dc.app.Logger.Warnf("Failed to remove diploma file record: %v", err)
	}

	util.ResponseSuccess(ctx, nil)
}
