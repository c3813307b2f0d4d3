package repository

import (
	"context"

	constant "github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"gorm.io/gorm"
)

type GeneratedDocumentRepository struct {
	*baseRepository
}

// DocumentFilter narrows the document listing. CreatedByID filters to the
// acting user's own documents.
type DocumentFilter struct {
	TemplateType constant.TemplateType
	Status       constant.DocumentStatus
	CreatedByID  string
}

func (dr GeneratedDocumentRepository) List(ctx context.Context, tx *gorm.DB, filter DocumentFilter, page, pageSize uint) ([]model.GeneratedDocument, int64, error) {
	dr.logger.Debugf("List documents, filter: %+v, page: %d \n", filter, page)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	q := db.WithContext(ctx).Model(&model.GeneratedDocument{})
	if filter.TemplateType != "" {
		q = q.Joins("JOIN order_templates ON order_templates.id = generated_documents.template_id").
			Where("order_templates.type = ?", filter.TemplateType)
	}
	if filter.Status != "" {
		q = q.Where("generated_documents.status = ?", filter.Status)
	}
	if filter.CreatedByID != "" {
		q = q.Where("generated_documents.created_by_id = ?", filter.CreatedByID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var documents []model.GeneratedDocument
	if err := q.Preload("Template").
		Preload("Student").
		Preload("Group").
		Order("generated_documents.created_at desc").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&documents).Error; err != nil {
		return nil, 0, err
	}

	return documents, total, nil
}

func (dr GeneratedDocumentRepository) GetById(ctx context.Context, tx *gorm.DB, documentId string) (*model.GeneratedDocument, error) {
	dr.logger.Debugf("Get document by id: %s \n", documentId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var document *model.GeneratedDocument
	if err := db.WithContext(ctx).Model(&model.GeneratedDocument{}).
		Preload("Template").
		Preload("Student").
		Preload("Group").
		Preload("CreatedBy").
		Preload("Collaborators", "is_active = ?", true).
		Preload("Collaborators.User").
		Preload("MarkdownFile").
		Preload("DocxFile").
		Preload("PdfFile").
		Where("id = ?", documentId).First(&document).Error; err != nil {
		return document, err
	}

	return document, nil
}

// GetByShareToken resolves a document from its public share token.
func (dr GeneratedDocumentRepository) GetByShareToken(ctx context.Context, tx *gorm.DB, shareToken string) (*model.GeneratedDocument, error) {
	dr.logger.Debugf("Get document by share token \n")

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var document *model.GeneratedDocument
	if err := db.WithContext(ctx).Model(&model.GeneratedDocument{}).
		Preload("Template").
		Preload("Student").
		Preload("Group").
		Where("share_token = ?", shareToken).First(&document).Error; err != nil {
		return document, err
	}

	return document, nil
}

// Create inserts the document and registers the creator as an editor
// collaborator in one transaction. The unique index on document_number
// rejects collisions.
func (dr *GeneratedDocumentRepository) Create(ctx context.Context, tx *gorm.DB, newDocument model.GeneratedDocument) (*model.GeneratedDocument, error) {
	dr.logger.Debugf("Create document with data: %v \n", newDocument)

	db := dr.getDB(tx)

	document := model.GeneratedDocument{
		DocumentNumber: newDocument.DocumentNumber,
		DocumentDate:   newDocument.DocumentDate,
		TemplateID:     newDocument.TemplateID,
		StudentID:      newDocument.StudentID,
		GroupID:        newDocument.GroupID,
		DocumentData:   newDocument.DocumentData,
		Content:        newDocument.Content,
		Status:         constant.DocumentStatusDraft,
		ShareToken:     newDocument.ShareToken,
		CreatedByID:    newDocument.CreatedByID,
	}

	txErr := dr.withTx(db, func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx.WithContext(ctx).Model(&model.GeneratedDocument{}).Create(&document).Error; err != nil {
			return err
		}

		creator := model.DocumentCollaborator{
			DocumentID: document.ID,
			UserID:     document.CreatedByID,
			Role:       constant.CollaboratorRoleEditor,
			CanEdit:    true,
			CanComment: true,
			CanApprove: true,
			CanSign:    false,
			IsActive:   true,
			AddedByID:  document.CreatedByID,
		}
		return tx.WithContext(ctx).Model(&model.DocumentCollaborator{}).Create(&creator).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return &document, nil
}

func (dr *GeneratedDocumentRepository) UpdateContent(ctx context.Context, tx *gorm.DB, documentId, content string) error {
	dr.logger.Debugf("Update content of document %s \n", documentId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.GeneratedDocument{}).Where("id = ?", documentId).Update("content", content).Error
}

func (dr *GeneratedDocumentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, documentId string, status constant.DocumentStatus) error {
	dr.logger.Debugf("Update status of document %s to %s \n", documentId, status)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.GeneratedDocument{}).Where("id = ?", documentId).Update("status", status).Error
}

// SetExportFile stores the rendered file reference for one export format.
func (dr *GeneratedDocumentRepository) SetExportFile(ctx context.Context, tx *gorm.DB, documentId, format, fileId string) error {
	dr.logger.Debugf("Set %s export file %s for document %s \n", format, fileId, documentId)

	var column string
	switch format {
	case "md", "markdown":
		column = "markdown_file_id"
	case "docx":
		column = "docx_file_id"
	case "pdf":
		column = "pdf_file_id"
	default:
		return gorm.ErrInvalidField
	}

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.GeneratedDocument{}).Where("id = ?", documentId).Update(column, fileId).Error
}
