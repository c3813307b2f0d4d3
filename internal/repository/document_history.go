package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type DocumentHistoryRepository struct {
	*baseRepository
}

func (hr DocumentHistoryRepository) ListByDocument(ctx context.Context, tx *gorm.DB, documentId string) ([]model.DocumentHistory, error) {
	hr.logger.Debugf("List history of document: %s \n", documentId)

	db := hr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var history []model.DocumentHistory
	if err := db.WithContext(ctx).Model(&model.DocumentHistory{}).
		Preload("User").
		Where("document_id = ?", documentId).
		Order("created_at desc").
		Find(&history).Error; err != nil {
		return nil, err
	}

	return history, nil
}

// Append writes one history row. Rows are never updated or deleted.
func (hr *DocumentHistoryRepository) Append(ctx context.Context, tx *gorm.DB, documentId, userId string, action constant.HistoryAction, changes, comment string) error {
	hr.logger.Debugf("Append history row for document %s: %s \n", documentId, action)

	db := hr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	row := model.DocumentHistory{
		DocumentID: documentId,
		UserID:     userId,
		Action:     action,
		Changes:    changes,
		Comment:    comment,
	}
	return db.WithContext(ctx).Model(&model.DocumentHistory{}).Create(&row).Error
}
