package controller

import (
	"errors"
	"net/http"
	"os"

	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/repository"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StudentController struct {
	*baseController
}

func (sc StudentController) GetStudents(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)
	filter := repository.StudentFilter{
		Query:        ctx.Query("query"),
		GroupID:      ctx.Query("groupId"),
		SupervisorID: ctx.Query("supervisorId"),
		Status:       constant.DiplomaStatus(ctx.Query("status")),
	}

	students, total, err := sc.app.Repository.Student.List(ctx, nil, filter, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list students", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"students":  students,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (sc StudentController) GetStudentById(ctx *gin.Context) {
	studentId := ctx.Param("student_id")

	student, err := sc.app.Repository.Student.GetById(ctx, nil, studentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Student not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get student", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"student": student,
	})
}

func (sc StudentController) CreateStudent(ctx *gin.Context) {
	var newStudent model.Student
	if err := ctx.ShouldBind(&newStudent); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid student data", util.GenerateErrorMessages(err), nil)
		return
	}

	student, err := sc.app.Repository.Student.Create(ctx, nil, newStudent)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Student with this ticket number already exists", util.GenerateErrorMessages(err, "studentId"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create student", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"student": student,
	})
}

func (sc StudentController) UpdateStudent(ctx *gin.Context) {
	studentId := ctx.Param("student_id")

	var updates model.Student
	if err := ctx.ShouldBind(&updates); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid student data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := sc.app.Repository.Student.GetById(ctx, nil, studentId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Student not found", err, nil)
		return
	}

	if err := sc.app.Repository.Student.Update(ctx, nil, studentId, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Student with this ticket number already exists", util.GenerateErrorMessages(err, "studentId"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update student", err, nil)
		return
	}

	student, err := sc.app.Repository.Student.GetById(ctx, nil, studentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get student", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"student": student,
	})
}

func (sc StudentController) DeleteStudent(ctx *gin.Context) {
	studentId := ctx.Param("student_id")

	if err := sc.app.Repository.Student.Delete(ctx, nil, studentId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete student", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// UploadStudentPhoto stores a 3x4 thumbnail of the uploaded image and links
// it to the student. A previous photo is replaced.
func (sc StudentController) UploadStudentPhoto(ctx *gin.Context) {
	studentId := ctx.Param("student_id")

	student, err := sc.app.Repository.Student.GetById(ctx, nil, studentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Student not found", err, nil)
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Photo file is required", util.GenerateErrorMessages(err, "photo"), nil)
		return
	}

	if err := util.ValidateUploadedFile(fileHeader, constant.MaxDiplomaFileSize, constant.AllowedPhotoExtensions); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, err.Error(), util.GenerateErrorMessages(err, "photo"), nil)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read photo", err, nil)
		return
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File is not a valid image", util.GenerateErrorMessages(err, "photo"), nil)
		return
	}

	thumb := imaging.Fill(img, constant.PhotoThumbnailWidth, constant.PhotoThumbnailHeight, imaging.Center, imaging.Lanczos)

	tmp, err := util.CreateTemp("photo_*.jpg")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to prepare photo", err, nil)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := imaging.Save(thumb, tmpPath); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to resize photo", err, nil)
		return
	}

	info, err := util.UploadFileToS3ByPath(tmpPath, &util.FileUploadOptions{
		DirectoryPath: util.GetStudentPhotoDirectoryPath(),
		UniquePrefix:  true,
		Bucket:        sc.app.Config.Minio.BUCKET,
		S3:            sc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store photo", err, nil)
		return
	}

	photoFile, err := sc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		ContentType:    "image/jpeg",
		Size:           info.Size,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save photo record", err, nil)
		return
	}

	if err := sc.app.Repository.Student.SetPhoto(ctx, nil, studentId, photoFile.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to link photo", err, nil)
		return
	}

	// Best effort cleanup of the replaced photo.
	if student.PhotoFile != nil {
		if err := student.PhotoFile.Delete(ctx, sc.app.S3); err != nil {
			sc.app.Logger.Warnf("Failed to remove previous photo object: %v", err)
		}
		if err := sc.app.Repository.File.Delete(ctx, nil, student.PhotoFile.ID); err != nil {
			sc.app.Logger.Warnf("Failed to remove previous photo record: %v", err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"photoFile": photoFile,
	})
}
