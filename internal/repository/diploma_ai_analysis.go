package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type DiplomaAIAnalysisRepository struct {
	*baseRepository
}

func (ar DiplomaAIAnalysisRepository) GetByDiplomaId(ctx context.Context, tx *gorm.DB, diplomaId string) (*model.DiplomaAIAnalysis, error) {
	ar.logger.Debugf("Get analysis by diploma project id: %s \n", diplomaId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var analysis *model.DiplomaAIAnalysis
	if err := db.WithContext(ctx).Model(&model.DiplomaAIAnalysis{}).
		Where("diploma_project_id = ?", diplomaId).First(&analysis).Error; err != nil {
		return analysis, err
	}

	return analysis, nil
}

// StartProcessing returns the analysis row for the project in the processing
// state, creating it on first run and resetting it on re-runs. One row per
// project, kept by the unique index.
func (ar *DiplomaAIAnalysisRepository) StartProcessing(ctx context.Context, tx *gorm.DB, diplomaId string) (*model.DiplomaAIAnalysis, error) {
	ar.logger.Debugf("Start processing analysis for diploma project: %s \n", diplomaId)

	db := ar.getDB(tx)

	var analysis *model.DiplomaAIAnalysis
	txErr := ar.withTx(db, func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		err := tx.WithContext(ctx).Model(&model.DiplomaAIAnalysis{}).
			Where("diploma_project_id = ?", diplomaId).First(&analysis).Error
		if err == nil {
			analysis.Status = constant.AnalysisStatusProcessing
			return tx.WithContext(ctx).Model(&model.DiplomaAIAnalysis{}).
				Where("id = ?", analysis.ID).Update("status", constant.AnalysisStatusProcessing).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		analysis = &model.DiplomaAIAnalysis{
			DiplomaProjectID: diplomaId,
			Status:           constant.AnalysisStatusProcessing,
		}
		return tx.WithContext(ctx).Model(&model.DiplomaAIAnalysis{}).Create(analysis).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return analysis, nil
}

func (ar *DiplomaAIAnalysisRepository) Complete(ctx context.Context, tx *gorm.DB, analysisId string, result model.DiplomaAIAnalysis) error {
	ar.logger.Debugf("Complete analysis %s \n", analysisId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.DiplomaAIAnalysis{}).Where("id = ?", analysisId).Updates(map[string]interface{}{
		"format_score":     result.FormatScore,
		"format_issues":    result.FormatIssues,
		"format_metadata":  result.FormatMetadata,
		"review_text":      result.ReviewText,
		"review_grade":     result.ReviewGrade,
		"review_time":      result.ReviewTime,
		"questions":        result.Questions,
		"content_analysis": result.ContentAnalysis,
		"ai_provider":      result.AIProvider,
		"raw_response":     result.RawResponse,
		"file_metadata":    result.FileMetadata,
		"status":           constant.AnalysisStatusCompleted,
	}).Error
}

// MarkFailed records the provider error verbatim for later inspection.
func (ar *DiplomaAIAnalysisRepository) MarkFailed(ctx context.Context, tx *gorm.DB, analysisId, rawError string) error {
	ar.logger.Debugf("Mark analysis %s as failed \n", analysisId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.DiplomaAIAnalysis{}).Where("id = ?", analysisId).Updates(map[string]interface{}{
		"raw_response": rawError,
		"status":       constant.AnalysisStatusFailed,
	}).Error
}
