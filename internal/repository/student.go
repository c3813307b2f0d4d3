package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type StudentRepository struct {
	*baseRepository
}

// StudentFilter narrows the student listing. Zero values mean no filter.
type StudentFilter struct {
	Query        string
	GroupID      string
	SupervisorID string
	Status       constant.DiplomaStatus
}

func (sr StudentRepository) List(ctx context.Context, tx *gorm.DB, filter StudentFilter, page, pageSize uint) ([]model.Student, int64, error) {
	sr.logger.Debugf("List students, filter: %+v, page: %d \n", filter, page)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	q := db.WithContext(ctx).Model(&model.Student{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("last_name ILIKE ? OR first_name ILIKE ? OR patronymic ILIKE ? OR student_id ILIKE ?", like, like, like, like)
	}
	if filter.GroupID != "" {
		q = q.Where("group_id = ?", filter.GroupID)
	}
	if filter.SupervisorID != "" || filter.Status != "" {
		q = q.Joins("JOIN diploma_projects ON diploma_projects.student_id = students.id")
		if filter.SupervisorID != "" {
			q = q.Where("diploma_projects.supervisor_id = ?", filter.SupervisorID)
		}
		if filter.Status != "" {
			q = q.Where("diploma_projects.status = ?", filter.Status)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []model.Student
	if err := q.Preload("Group").
		Preload("DiplomaProject").
		Preload("DiplomaProject.Supervisor").
		Order("students.last_name asc, students.first_name asc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (sr StudentRepository) GetById(ctx context.Context, tx *gorm.DB, studentId string) (*model.Student, error) {
	sr.logger.Debugf("Get student by id: %s \n", studentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var student *model.Student
	if err := db.WithContext(ctx).Model(&model.Student{}).
		Preload("Group").
		Preload("PhotoFile").
		Preload("DiplomaProject").
		Preload("DiplomaProject.Supervisor").
		Preload("DiplomaProject.File").
		Where("id = ?", studentId).First(&student).Error; err != nil {
		return student, err
	}

	return student, nil
}

func (sr *StudentRepository) Create(ctx context.Context, tx *gorm.DB, newStudent model.Student) (*model.Student, error) {
	sr.logger.Debugf("Create student with data: %v \n", newStudent)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	student := model.Student{
		LastName:   newStudent.LastName,
		FirstName:  newStudent.FirstName,
		Patronymic: newStudent.Patronymic,
		StudentID:  newStudent.StudentID,
		Email:      newStudent.Email,
		Phone:      newStudent.Phone,
		GroupID:    newStudent.GroupID,
		UserID:     newStudent.UserID,
	}
	if err := db.WithContext(ctx).Model(&model.Student{}).Create(&student).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

func (sr *StudentRepository) Update(ctx context.Context, tx *gorm.DB, studentId string, updates model.Student) error {
	sr.logger.Debugf("Update student %s with data: %v \n", studentId, updates)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Student{}).Where("id = ?", studentId).Updates(map[string]interface{}{
		"last_name":  updates.LastName,
		"first_name": updates.FirstName,
		"patronymic": updates.Patronymic,
		"student_id": updates.StudentID,
		"email":      updates.Email,
		"phone":      updates.Phone,
		"group_id":   gorm.Expr("NULLIF(?, '')", updates.GroupID),
	}).Error
}

func (sr *StudentRepository) SetPhoto(ctx context.Context, tx *gorm.DB, studentId, fileId string) error {
	sr.logger.Debugf("Set photo file %s for student %s \n", fileId, studentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Student{}).Where("id = ?", studentId).Update("photo_file_id", fileId).Error
}

func (sr *StudentRepository) Delete(ctx context.Context, tx *gorm.DB, studentId string) error {
	sr.logger.Debugf("Delete student with id: %s \n", studentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", studentId).Delete(&model.Student{}).Error
}
