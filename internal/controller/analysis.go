package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/azhuravlev/diplomdocs/internal/ai"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnalysisController struct {
	*baseController
}

// RunAnalysis checks the uploaded diploma file and stores the result. The
// analysis runs synchronously; the record stays in processing state only for
// the duration of the request.
func (ac AnalysisController) RunAnalysis(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	diploma, err := ac.app.Repository.DiplomaProject.GetById(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Diploma project not found", err, nil)
		return
	}

	if diploma.File == nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload the diploma file before running analysis", nil, gin.H{
			"requiresUpload": true,
		})
		return
	}

	analysis, err := ac.app.Repository.Analysis.StartProcessing(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to start analysis", err, nil)
		return
	}

	tmp, err := util.CreateTemp("analysis_*" + filepath.Ext(diploma.File.FileName))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to prepare analysis", err, nil)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := diploma.File.DownloadToLocal(ctx, ac.app.S3, tmpPath); err != nil {
		ac.failAnalysis(ctx, analysis.ID, err)
		return
	}

	meta := ai.DiplomaMeta{
		Topic: diploma.Topic,
	}
	if diploma.Student != nil {
		meta.StudentName = diploma.Student.FullName()
	}
	if diploma.Supervisor != nil {
		meta.SupervisorName = diploma.Supervisor.FullName()
	}

	result, err := ac.app.Analyzer.AnalyzeDiploma(ctx, tmpPath, meta)
	if err != nil {
		ac.failAnalysis(ctx, analysis.ID, err)
		return
	}

	record, err := ac.buildAnalysisRecord(result, diploma.File)
	if err != nil {
		ac.failAnalysis(ctx, analysis.ID, err)
		return
	}

	if err := ac.app.Repository.Analysis.Complete(ctx, nil, analysis.ID, record); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save analysis", err, nil)
		return
	}

	saved, err := ac.app.Repository.Analysis.GetByDiplomaId(ctx, nil, diplomaId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get analysis", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"analysis": saved,
	})
}

func (ac AnalysisController) failAnalysis(ctx *gin.Context, analysisId string, cause error) {
	if err := ac.app.Repository.Analysis.MarkFailed(ctx, nil, analysisId, cause.Error()); err != nil {
		ac.app.Logger.Warnf("Failed to mark analysis %s as failed: %v", analysisId, err)
	}
	util.ResponseFailed(ctx, http.StatusInternalServerError, "Analysis failed", cause, nil)
}

// buildAnalysisRecord flattens the analyzer result into stored columns.
func (ac AnalysisController) buildAnalysisRecord(result *ai.Result, file *model.File) (model.DiplomaAIAnalysis, error) {
	issues, err := json.Marshal(result.FormatCheck.Issues)
	if err != nil {
		return model.DiplomaAIAnalysis{}, err
	}
	questions, err := json.Marshal(result.Questions)
	if err != nil {
		return model.DiplomaAIAnalysis{}, err
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return model.DiplomaAIAnalysis{}, err
	}

	return model.DiplomaAIAnalysis{
		FormatScore:     result.FormatCheck.Score,
		FormatIssues:    datatypes.JSON(issues),
		FormatMetadata:  datatypes.JSONMap(result.FormatCheck.Metadata),
		ReviewText:      result.Review.Text,
		ReviewGrade:     result.Review.Grade,
		ReviewTime:      result.Review.GeneratedAt,
		Questions:       datatypes.JSON(questions),
		ContentAnalysis: datatypes.JSONMap(result.Metadata),
		AIProvider:      result.Provider,
		RawResponse:     string(raw),
		FileMetadata: datatypes.JSONMap{
			"fileName": file.ToBaseFilename(),
			"size":     file.Size,
		},
	}, nil
}

func (ac AnalysisController) GetAnalysis(ctx *gin.Context) {
	diplomaId := ctx.Param("diploma_id")

	analysis, err := ac.app.Repository.Analysis.GetByDiplomaId(ctx, nil, diplomaId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "No analysis for this diploma project", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get analysis", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"analysis": analysis,
	})
}
