package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type TemplateSectionRepository struct {
	*baseRepository
}

func (sr TemplateSectionRepository) GetByTemplateId(ctx context.Context, tx *gorm.DB, templateId string) ([]model.TemplateSection, error) {
	sr.logger.Debugf("Get sections by template id: %s \n", templateId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var sections []model.TemplateSection
	if err := db.WithContext(ctx).Model(&model.TemplateSection{}).
		Where("template_id = ?", templateId).
		Order("\"order\" asc").
		Find(&sections).Error; err != nil {
		return nil, err
	}

	return sections, nil
}

func (sr TemplateSectionRepository) GetById(ctx context.Context, tx *gorm.DB, sectionId string) (*model.TemplateSection, error) {
	sr.logger.Debugf("Get section by id: %s \n", sectionId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var section *model.TemplateSection
	if err := db.WithContext(ctx).Model(&model.TemplateSection{}).Where("id = ?", sectionId).First(&section).Error; err != nil {
		return section, err
	}

	return section, nil
}

func (sr *TemplateSectionRepository) Create(ctx context.Context, tx *gorm.DB, newSection model.TemplateSection) (*model.TemplateSection, error) {
	sr.logger.Debugf("Create section with data: %v \n", newSection)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	section := model.TemplateSection{
		TemplateID:        newSection.TemplateID,
		Title:             newSection.Title,
		Content:           newSection.Content,
		Order:             newSection.Order,
		AvailableFields:   newSection.AvailableFields,
		DisplayConditions: newSection.DisplayConditions,
		IsRequired:        newSection.IsRequired,
		CanBeDeleted:      newSection.CanBeDeleted,
		CanBeEdited:       newSection.CanBeEdited,
	}
	if err := db.WithContext(ctx).Model(&model.TemplateSection{}).Create(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}

func (sr *TemplateSectionRepository) Update(ctx context.Context, tx *gorm.DB, sectionId string, updates model.TemplateSection) error {
	sr.logger.Debugf("Update section %s with data: %v \n", sectionId, updates)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.TemplateSection{}).Where("id = ?", sectionId).Updates(map[string]interface{}{
		"title":              updates.Title,
		"content":            updates.Content,
		"available_fields":   updates.AvailableFields,
		"display_conditions": updates.DisplayConditions,
		"is_required":        updates.IsRequired,
		"can_be_deleted":     updates.CanBeDeleted,
		"can_be_edited":      updates.CanBeEdited,
	}).Error
}

// Reorder writes order = index for every section id, all in one transaction.
// Ids not belonging to the template are ignored by the scoped update.
func (sr *TemplateSectionRepository) Reorder(ctx context.Context, tx *gorm.DB, templateId string, orderedIds []string) error {
	sr.logger.Debugf("Reorder sections of template %s: %v \n", templateId, orderedIds)

	db := sr.getDB(tx)
	return sr.withTx(db, func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		for idx, sectionId := range orderedIds {
			if err := tx.WithContext(ctx).Model(&model.TemplateSection{}).
				Where("id = ? AND template_id = ?", sectionId, templateId).
				Update("order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (sr *TemplateSectionRepository) Delete(ctx context.Context, tx *gorm.DB, sectionId string) error {
	sr.logger.Debugf("Delete section with id: %s \n", sectionId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ?", sectionId).Delete(&model.TemplateSection{}).Error
}
