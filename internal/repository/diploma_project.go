package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type DiplomaProjectRepository struct {
	*baseRepository
}

func (dr DiplomaProjectRepository) GetById(ctx context.Context, tx *gorm.DB, diplomaId string) (*model.DiplomaProject, error) {
	dr.logger.Debugf("Get diploma project by id: %s \n", diplomaId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var diploma *model.DiplomaProject
	if err := db.WithContext(ctx).Model(&model.DiplomaProject{}).
		Preload("Student").
		Preload("Student.Group").
		Preload("Supervisor").
		Preload("File").
		Preload("AIAnalysis").
		Where("id = ?", diplomaId).First(&diploma).Error; err != nil {
		return diploma, err
	}

	return diploma, nil
}

func (dr DiplomaProjectRepository) GetByStudentId(ctx context.Context, tx *gorm.DB, studentId string) (*model.DiplomaProject, error) {
	dr.logger.Debugf("Get diploma project by student id: %s \n", studentId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var diploma *model.DiplomaProject
	if err := db.WithContext(ctx).Model(&model.DiplomaProject{}).
		Preload("Supervisor").
		Preload("File").
		Where("student_id = ?", studentId).First(&diploma).Error; err != nil {
		return diploma, err
	}

	return diploma, nil
}

// Create inserts the project. The unique index on student_id rejects a
// second project for the same student.
func (dr *DiplomaProjectRepository) Create(ctx context.Context, tx *gorm.DB, newDiploma model.DiplomaProject) (*model.DiplomaProject, error) {
	dr.logger.Debugf("Create diploma project with data: %v \n", newDiploma)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	diploma := model.DiplomaProject{
		Topic:            newDiploma.Topic,
		Description:      newDiploma.Description,
		StudentID:        newDiploma.StudentID,
		SupervisorID:     newDiploma.SupervisorID,
		RegistrationDate: newDiploma.RegistrationDate,
		Deadline:         newDiploma.Deadline,
		Status:           newDiploma.Status,
	}
	if diploma.Status == "" {
		diploma.Status = constant.DiplomaStatusRegistered
	}
	if err := db.WithContext(ctx).Model(&model.DiplomaProject{}).Create(&diploma).Error; err != nil {
		return nil, err
	}

	return &diploma, nil
}

func (dr *DiplomaProjectRepository) Update(ctx context.Context, tx *gorm.DB, diplomaId string, updates model.DiplomaProject) error {
	dr.logger.Debugf("Update diploma project %s with data: %v \n", diplomaId, updates)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.DiplomaProject{}).Where("id = ?", diplomaId).Updates(map[string]interface{}{
		"topic":             updates.Topic,
		"description":       updates.Description,
		"supervisor_id":     gorm.Expr("NULLIF(?, '')", updates.SupervisorID),
		"registration_date": updates.RegistrationDate,
		"deadline":          updates.Deadline,
		"status":            updates.Status,
	}).Error
}

func (dr *DiplomaProjectRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, diplomaId string, status constant.DiplomaStatus) error {
	dr.logger.Debugf("Update diploma project %s status to %s \n", diplomaId, status)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.DiplomaProject{}).Where("id = ?", diplomaId).Update("status", status).Error
}

func (dr *DiplomaProjectRepository) SetFile(ctx context.Context, tx *gorm.DB, diplomaId, fileId string) error {
	dr.logger.Debugf("Set file %s for diploma project %s \n", fileId, diplomaId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.DiplomaProject{}).Where("id = ?", diplomaId).Update("file_id", gorm.Expr("NULLIF(?, '')", fileId)).Error
}

// ClearFile detaches the uploaded file and drops the analysis bound to it
// in one transaction.
func (dr *DiplomaProjectRepository) ClearFile(ctx context.Context, tx *gorm.DB, diplomaId string) error {
	dr.logger.Debugf("Clear file for diploma project %s \n", diplomaId)

	db := dr.getDB(tx)
	return dr.withTx(db, func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(ctx).Model(&model.DiplomaProject{}).Where("id = ?", diplomaId).Update("file_id", nil).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).Where("diploma_project_id = ?", diplomaId).Delete(&model.DiplomaAIAnalysis{}).Error
	})
}

func (dr *DiplomaProjectRepository) Delete(ctx context.Context, tx *gorm.DB, diplomaId string) error {
	dr.logger.Debugf("Delete diploma project with id: %s \n", diplomaId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", diplomaId).Delete(&model.DiplomaProject{}).Error
}
