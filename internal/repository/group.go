package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type GroupRepository struct {
	*baseRepository
}

func (gr GroupRepository) List(ctx context.Context, tx *gorm.DB, query string, page, pageSize uint) ([]model.Group, int64, error) {
	gr.logger.Debugf("List groups, query: %q, page: %d \n", query, page)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	q := db.WithContext(ctx).Model(&model.Group{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR faculty ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []model.Group
	if err := q.Order("name asc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&groups).Error; err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

func (gr GroupRepository) GetById(ctx context.Context, tx *gorm.DB, groupId string) (*model.Group, error) {
	gr.logger.Debugf("Get group by id: %s \n", groupId)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var group *model.Group
	if err := db.WithContext(ctx).Model(&model.Group{}).Where("id = ?", groupId).First(&group).Error; err != nil {
		return group, err
	}

	return group, nil
}

// GetWithRoster loads the group with students, their projects and
// supervisors, the shape the order renderers consume.
func (gr GroupRepository) GetWithRoster(ctx context.Context, tx *gorm.DB, groupId string) (*model.Group, error) {
	gr.logger.Debugf("Get group with roster by id: %s \n", groupId)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var group *model.Group
	if err := db.WithContext(ctx).Model(&model.Group{}).
		Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("students.last_name asc, students.first_name asc")
		}).
		Preload("Students.DiplomaProject").
		Preload("Students.DiplomaProject.Supervisor").
		Where("id = ?", groupId).First(&group).Error; err != nil {
		return group, err
	}

	return group, nil
}

func (gr *GroupRepository) Create(ctx context.Context, tx *gorm.DB, newGroup model.Group) (*model.Group, error) {
	gr.logger.Debugf("Create group with data: %v \n", newGroup)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	group := model.Group{
		Name:    newGroup.Name,
		Faculty: newGroup.Faculty,
		Course:  newGroup.Course,
	}
	if err := db.WithContext(ctx).Model(&model.Group{}).Create(&group).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (gr *GroupRepository) Update(ctx context.Context, tx *gorm.DB, groupId string, updates model.Group) error {
	gr.logger.Debugf("Update group %s with data: %v \n", groupId, updates)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Group{}).Where("id = ?", groupId).Updates(map[string]interface{}{
		"name":    updates.Name,
		"faculty": updates.Faculty,
		"course":  updates.Course,
	}).Error
}

func (gr *GroupRepository) Delete(ctx context.Context, tx *gorm.DB, groupId string) error {
	gr.logger.Debugf("Delete group with id: %s \n", groupId)

	db := gr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", groupId).Delete(&model.Group{}).Error
}
