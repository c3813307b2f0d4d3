package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type SupervisorRepository struct {
	*baseRepository
}

func (sr SupervisorRepository) List(ctx context.Context, tx *gorm.DB, query string, page, pageSize uint) ([]model.Supervisor, int64, error) {
	sr.logger.Debugf("List supervisors, query: %q, page: %d \n", query, page)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	q := db.WithContext(ctx).Model(&model.Supervisor{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("last_name ILIKE ? OR first_name ILIKE ? OR patronymic ILIKE ? OR position ILIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var supervisors []model.Supervisor
	if err := q.Order("last_name asc, first_name asc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&supervisors).Error; err != nil {
		return nil, 0, err
	}

	return supervisors, total, nil
}

func (sr SupervisorRepository) GetById(ctx context.Context, tx *gorm.DB, supervisorId string) (*model.Supervisor, error) {
	sr.logger.Debugf("Get supervisor by id: %s \n", supervisorId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var supervisor *model.Supervisor
	if err := db.WithContext(ctx).Model(&model.Supervisor{}).
		Preload("DiplomaProjects").
		Preload("DiplomaProjects.Student").
		Where("id = ?", supervisorId).First(&supervisor).Error; err != nil {
		return supervisor, err
	}

	return supervisor, nil
}

func (sr *SupervisorRepository) Create(ctx context.Context, tx *gorm.DB, newSupervisor model.Supervisor) (*model.Supervisor, error) {
	sr.logger.Debugf("Create supervisor with data: %v \n", newSupervisor)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	supervisor := model.Supervisor{
		LastName:       newSupervisor.LastName,
		FirstName:      newSupervisor.FirstName,
		Patronymic:     newSupervisor.Patronymic,
		AcademicDegree: newSupervisor.AcademicDegree,
		Position:       newSupervisor.Position,
		Email:          newSupervisor.Email,
		Phone:          newSupervisor.Phone,
	}
	if err := db.WithContext(ctx).Model(&model.Supervisor{}).Create(&supervisor).Error; err != nil {
		return nil, err
	}

	return &supervisor, nil
}

func (sr *SupervisorRepository) Update(ctx context.Context, tx *gorm.DB, supervisorId string, updates model.Supervisor) error {
	sr.logger.Debugf("Update supervisor %s with data: %v \n", supervisorId, updates)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Supervisor{}).Where("id = ?", supervisorId).Updates(map[string]interface{}{
		"last_name":       updates.LastName,
		"first_name":      updates.FirstName,
		"patronymic":      updates.Patronymic,
		"academic_degree": updates.AcademicDegree,
		"position":        updates.Position,
		"email":           updates.Email,
		"phone":           updates.Phone,
	}).Error
}

func (sr *SupervisorRepository) Delete(ctx context.Context, tx *gorm.DB, supervisorId string) error {
	sr.logger.Debugf("Delete supervisor with id: %s \n", supervisorId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", supervisorId).Delete(&model.Supervisor{}).Error
}
