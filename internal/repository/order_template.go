package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderTemplateRepository struct {
	*baseRepository
}

// TemplateFilter narrows the template listing. ActiveOnly defaults to
// listing everything.
type TemplateFilter struct {
	Type       constant.TemplateType
	ActiveOnly bool
}

func (tr OrderTemplateRepository) List(ctx context.Context, tx *gorm.DB, filter TemplateFilter, page, pageSize uint) ([]model.OrderTemplate, int64, error) {
	tr.logger.Debugf("List templates, filter: %+v, page: %d \n", filter, page)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	q := db.WithContext(ctx).Model(&model.OrderTemplate{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var templates []model.OrderTemplate
	if err := q.Order("name asc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&templates).Error; err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

func (tr OrderTemplateRepository) GetById(ctx context.Context, tx *gorm.DB, templateId string) (*model.OrderTemplate, error) {
	tr.logger.Debugf("Get template by id: %s \n", templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var template *model.OrderTemplate
	if err := db.WithContext(ctx).Model(&model.OrderTemplate{}).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("template_sections.\"order\" asc")
		}).
		Preload("TemplateFile").
		Where("id = ?", templateId).First(&template).Error; err != nil {
		return template, err
	}

	return template, nil
}

func (tr *OrderTemplateRepository) Create(ctx context.Context, tx *gorm.DB, newTemplate model.OrderTemplate) (*model.OrderTemplate, error) {
	tr.logger.Debugf("Create template with data: %v \n", newTemplate)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	template := model.OrderTemplate{
		Name:              newTemplate.Name,
		Description:       newTemplate.Description,
		Type:              newTemplate.Type,
		Content:           newTemplate.Content,
		AvailableFields:   newTemplate.AvailableFields,
		DefaultFormatting: newTemplate.DefaultFormatting,
		IsActive:          true,
		CreatedByID:       newTemplate.CreatedByID,
	}
	if err := db.WithContext(ctx).Model(&model.OrderTemplate{}).Create(&template).Error; err != nil {
		return nil, err
	}

	return &template, nil
}

func (tr *OrderTemplateRepository) Update(ctx context.Context, tx *gorm.DB, templateId string, updates model.OrderTemplate) error {
	tr.logger.Debugf("Update template %s with data: %v \n", templateId, updates)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.OrderTemplate{}).Where("id = ?", templateId).Updates(map[string]interface{}{
		"name":               updates.Name,
		"description":        updates.Description,
		"type":               updates.Type,
		"content":            updates.Content,
		"available_fields":   updates.AvailableFields,
		"default_formatting": updates.DefaultFormatting,
		"is_active":          updates.IsActive,
	}).Error
}

func (tr *OrderTemplateRepository) SetContent(ctx context.Context, tx *gorm.DB, templateId, content string, availableFields datatypes.JSON) error {
	tr.logger.Debugf("Set content for template %s \n", templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.OrderTemplate{}).Where("id = ?", templateId).Updates(map[string]interface{}{
		"content":          content,
		"available_fields": availableFields,
	}).Error
}

func (tr *OrderTemplateRepository) SetTemplateFile(ctx context.Context, tx *gorm.DB, templateId, fileId string) error {
	tr.logger.Debugf("Set template file %s for template %s \n", fileId, templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.OrderTemplate{}).Where("id = ?", templateId).Update("template_file_id", fileId).Error
}

func (tr *OrderTemplateRepository) Delete(ctx context.Context, tx *gorm.DB, templateId string) error {
	tr.logger.Debugf("Delete template with id: %s \n", templateId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", templateId).Delete(&model.OrderTemplate{}).Error
}
