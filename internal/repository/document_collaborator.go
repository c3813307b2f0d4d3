package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type DocumentCollaboratorRepository struct {
	*baseRepository
}

func (cr DocumentCollaboratorRepository) ListByDocument(ctx context.Context, tx *gorm.DB, documentId string) ([]model.DocumentCollaborator, error) {
	cr.logger.Debugf("List collaborators of document: %s \n", documentId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var collaborators []model.DocumentCollaborator
	if err := db.WithContext(ctx).Model(&model.DocumentCollaborator{}).
		Preload("User").
		Where("document_id = ? AND is_active = ?", documentId, true).
		Order("created_at asc").
		Find(&collaborators).Error; err != nil {
		return nil, err
	}

	return collaborators, nil
}

func (cr DocumentCollaboratorRepository) GetForUser(ctx context.Context, tx *gorm.DB, documentId, userId string) ([]model.DocumentCollaborator, error) {
	cr.logger.Debugf("Get collaborator rows of document %s for user %s \n", documentId, userId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var collaborators []model.DocumentCollaborator
	if err := db.WithContext(ctx).Model(&model.DocumentCollaborator{}).
		Where("document_id = ? AND user_id = ? AND is_active = ?", documentId, userId, true).
		Find(&collaborators).Error; err != nil {
		return nil, err
	}

	return collaborators, nil
}

// CanEdit reports whether the user holds an active collaborator row with the
// edit permission.
func (cr DocumentCollaboratorRepository) CanEdit(ctx context.Context, tx *gorm.DB, documentId, userId string) (bool, error) {
	rows, err := cr.GetForUser(ctx, tx, documentId, userId)
	if err != nil {
		return false, err
	}
	for _, c := range rows {
		if c.CanEdit {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts the collaborator. The composite unique index on
// (document, user, role) rejects a duplicate triple.
func (cr *DocumentCollaboratorRepository) Add(ctx context.Context, tx *gorm.DB, newCollaborator model.DocumentCollaborator) (*model.DocumentCollaborator, error) {
	cr.logger.Debugf("Add collaborator with data: %v \n", newCollaborator)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	collaborator := model.DocumentCollaborator{
		DocumentID: newCollaborator.DocumentID,
		UserID:     newCollaborator.UserID,
		Role:       newCollaborator.Role,
		CanEdit:    newCollaborator.CanEdit,
		CanComment: newCollaborator.CanComment,
		CanApprove: newCollaborator.CanApprove,
		CanSign:    newCollaborator.CanSign,
		IsActive:   true,
		AddedByID:  newCollaborator.AddedByID,
	}
	if err := db.WithContext(ctx).Model(&model.DocumentCollaborator{}).Create(&collaborator).Error; err != nil {
		return nil, err
	}

	return &collaborator, nil
}

func (cr *DocumentCollaboratorRepository) Remove(ctx context.Context, tx *gorm.DB, documentId, collaboratorId string) error {
	cr.logger.Debugf("Remove collaborator %s from document %s \n", collaboratorId, documentId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("id = ? AND document_id = ?", collaboratorId, documentId).Delete(&model.DocumentCollaborator{}).Error
}
