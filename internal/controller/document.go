package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/mailer"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/repository"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/azhuravlev/diplomdocs/pkg/orderdoc"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentController struct {
	*baseController
}

// fieldInput is one posted placeholder value.
type fieldInput struct {
	Key   string `json:"key" form:"key" binding:"required"`
	Value string `json:"value" form:"value"`
}

type generateDocumentRequest struct {
	TemplateID   string       `json:"templateId" form:"templateId" binding:"required"`
	StudentID    string       `json:"studentId" form:"studentId"`
	GroupID      string       `json:"groupId" form:"groupId"`
	DocumentDate *time.Time   `json:"documentDate" form:"documentDate"`
	Fields       []fieldInput `json:"fields" form:"fields"`
}

// buildDocumentData prepares substitution data from the template's declared
// field list, in declared order. Declared fields without a posted value fall
// back to the empty string; posted keys the template does not declare are
// dropped.
func buildDocumentData(availableFields datatypes.JSON, posted []fieldInput) (*orderdoc.Data, error) {
	var declared []string
	if len(availableFields) > 0 {
		if err := json.Unmarshal(availableFields, &declared); err != nil {
			return nil, fmt.Errorf("failed to parse template fields: %w", err)
		}
	}

	values := make(map[string]string, len(posted))
	for _, f := range posted {
		values[f.Key] = f.Value
	}

	data := orderdoc.NewData()
	for _, field := range declared {
		data.Set(field, values[field])
	}
	return data, nil
}

// GenerateDocument fills a template for exactly one subject, a student or a
// group, and stores the result as a draft.
func (dc DocumentController) GenerateDocument(ctx *gin.Context) {
	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var req generateDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid document data", util.GenerateErrorMessages(err), nil)
		return
	}

	if (req.StudentID == "") == (req.GroupID == "") {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Exactly one of studentId or groupId must be set", nil, nil)
		return
	}

	template, err := dc.app.Repository.OrderTemplate.GetById(ctx, nil, req.TemplateID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	var objectType, objectID, objectName string
	if req.StudentID != "" {
		student, err := dc.app.Repository.Student.GetById(ctx, nil, req.StudentID)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusNotFound, "Student not found", err, nil)
			return
		}
		objectType, objectID, objectName = "student", student.ID, student.FullName()
	} else {
		group, err := dc.app.Repository.Group.GetById(ctx, nil, req.GroupID)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusNotFound, "Group not found", err, nil)
			return
		}
		objectType, objectID, objectName = "group", group.ID, group.Name
	}

	now := time.Now()
	userName := strings.TrimSpace(authUser.FirstName + " " + authUser.LastName)

	data, err := buildDocumentData(template.AvailableFields, req.Fields)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read template fields", err, nil)
		return
	}
	data.AppendSystemFields(orderdoc.SystemFieldsInput{
		ObjectType: objectType,
		ObjectID:   objectID,
		ObjectName: objectName,
		Now:        now,
		UserName:   userName,
	})

	shareToken, err := util.GenerateNChar(32)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate share token", err, nil)
		return
	}

	documentDate := now
	if req.DocumentDate != nil {
		documentDate = *req.DocumentDate
	}

	newDocument := model.GeneratedDocument{
		DocumentNumber: orderdoc.DocumentNumber(objectType, objectID, now),
		DocumentDate:   &documentDate,
		TemplateID:     template.ID,
		StudentID:      req.StudentID,
		GroupID:        req.GroupID,
		DocumentData:   datatypes.JSONMap(data.ToMap()),
		Content:        orderdoc.Substitute(template.Content, data),
		ShareToken:     shareToken,
		CreatedByID:    authUser.ID,
	}

	document, err := dc.app.Repository.Document.Create(ctx, nil, newDocument)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "Document with this number already exists", util.GenerateErrorMessages(err, "documentNumber"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create document", err, nil)
		return
	}

	if err := dc.app.Repository.History.Append(ctx, nil, document.ID, authUser.ID, constant.HistoryActionCreate, "", ""); err != nil {
		dc.app.Logger.Warnf("Failed to append create history for document %s: %v", document.ID, err)
	}

	util.ResponseSuccess(ctx, gin.H{
		"document": document,
	})
}

func (dc DocumentController) GetDocuments(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)

	filter := repository.DocumentFilter{
		TemplateType: constant.TemplateType(ctx.Query("type")),
		Status:       constant.DocumentStatus(ctx.Query("status")),
	}
	if ctx.Query("mine") == "true" {
		authUser, err := dc.getAuthUser(ctx)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
			return
		}
		filter.CreatedByID = authUser.ID
	}

	documents, total, err := dc.app.Repository.Document.List(ctx, nil, filter, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list documents", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"documents": documents,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (dc DocumentController) GetDocumentById(ctx *gin.Context) {
	documentId := ctx.Param("document_id")

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get document", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"document": document,
	})
}

// GetSharedDocument serves a document by its share token without auth.
func (dc DocumentController) GetSharedDocument(ctx *gin.Context) {
	shareToken := ctx.Param("share_token")

	document, err := dc.app.Repository.Document.GetByShareToken(ctx, nil, shareToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"document": document,
	})
}

// canEditDocument reports whether the user may change the document body:
// the creator always can, otherwise an active collaborator with can_edit.
func (dc DocumentController) canEditDocument(ctx *gin.Context, document *model.GeneratedDocument, userId string) (bool, error) {
	if document.CreatedByID == userId {
		return true, nil
	}
	return dc.app.Repository.Collaborator.CanEdit(ctx, nil, document.ID, userId)
}

func (dc DocumentController) UpdateDocumentContent(ctx *gin.Context) {
	documentId := ctx.Param("document_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var body struct {
		Content string `json:"content" form:"content" binding:"required,strNotEmpty"`
		Comment string `json:"comment" form:"comment"`
	}
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Content is required", util.GenerateErrorMessages(err, "content"), nil)
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
		return
	}

	allowed, err := dc.canEditDocument(ctx, document, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to check permissions", err, nil)
		return
	}
	if !allowed {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to edit this document", nil, nil)
		return
	}

	if err := dc.app.Repository.Document.UpdateContent(ctx, nil, documentId, body.Content); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update content", err, nil)
		return
	}

	if err := dc.app.Repository.History.Append(ctx, nil, documentId, authUser.ID, constant.HistoryActionEdit, "content", body.Comment); err != nil {
		dc.app.Logger.Warnf("Failed to append edit history for document %s: %v", documentId, err)
	}

	util.ResponseSuccess(ctx, nil)
}

// statusHistoryAction maps a status change to its history entry.
func statusHistoryAction(to constant.DocumentStatus) constant.HistoryAction {
	switch to {
	case constant.DocumentStatusGenerated:
		return constant.HistoryActionApprove
	case constant.DocumentStatusSigned:
		return constant.HistoryActionSign
	}
	return constant.HistoryActionEdit
}

func (dc DocumentController) UpdateDocumentStatus(ctx *gin.Context) {
	documentId := ctx.Param("document_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var body struct {
		Status  constant.DocumentStatus `json:"status" form:"status" binding:"required"`
		Comment string                  `json:"comment" form:"comment"`
	}
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Status is required", util.GenerateErrorMessages(err, "status"), nil)
		return
	}

	if !body.Status.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown document status", nil, gin.H{"status": body.Status})
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
		return
	}

	if !document.Status.CanTransition(body.Status) {
		util.ResponseFailed(ctx, http.StatusConflict, fmt.Sprintf("Cannot change status from %s to %s", document.Status, body.Status), nil, gin.H{
			"currentStatus": document.Status,
		})
		return
	}

	if document.Status == body.Status {
		util.ResponseSuccess(ctx, gin.H{"status": document.Status})
		return
	}

	allowed, err := dc.canChangeStatus(ctx, document, authUser.ID, body.Status)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to check permissions", err, nil)
		return
	}
	if !allowed {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to change this status", nil, nil)
		return
	}

	if err := dc.app.Repository.Document.UpdateStatus(ctx, nil, documentId, body.Status); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update status", err, nil)
		return
	}

	changes := fmt.Sprintf("status: %s -> %s", document.Status, body.Status)
	if err := dc.app.Repository.History.Append(ctx, nil, documentId, authUser.ID, statusHistoryAction(body.Status), changes, body.Comment); err != nil {
		dc.app.Logger.Warnf("Failed to append status history for document %s: %v", documentId, err)
	}

	dc.notifyStatusChange(document, document.Status, body.Status)

	util.ResponseSuccess(ctx, gin.H{
		"status": body.Status,
	})
}

// canChangeStatus checks the actor against the target status. Signing needs
// an active collaborator with can_sign; everything else is open to the
// creator or a collaborator with can_approve.
func (dc DocumentController) canChangeStatus(ctx *gin.Context, document *model.GeneratedDocument, userId string, to constant.DocumentStatus) (bool, error) {
	collaborations, err := dc.app.Repository.Collaborator.GetForUser(ctx, nil, document.ID, userId)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	if to == constant.DocumentStatusSigned {
		for _, c := range collaborations {
			if c.CanSign {
				return true, nil
			}
		}
		return false, nil
	}

	if document.CreatedByID == userId {
		return true, nil
	}
	for _, c := range collaborations {
		if c.CanApprove {
			return true, nil
		}
	}
	return false, nil
}

// notifyStatusChange mails active collaborators, best effort.
func (dc DocumentController) notifyStatusChange(document *model.GeneratedDocument, from, to constant.DocumentStatus) {
	for _, c := range document.Collaborators {
		if c.User == nil || c.User.Email == "" {
			continue
		}
		username := strings.TrimSpace(c.User.FirstName + " " + c.User.LastName)
		if _, err := dc.app.Mailer.Send(mailer.DOCUMENT_STATUS_TEMPLATE, username, c.User.Email, gin.H{
			"Username":       username,
			"DocumentNumber": document.DocumentNumber,
			"OldStatus":      string(from),
			"NewStatus":      string(to),
		}); err != nil {
			dc.app.Logger.Warnf("Failed to send status notice to %s: %v", c.User.Email, err)
		}
	}
}

func (dc DocumentController) GetCollaborators(ctx *gin.Context) {
	documentId := ctx.Param("document_id")

	collaborators, err := dc.app.Repository.Collaborator.ListByDocument(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list collaborators", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"collaborators": collaborators,
	})
}

func (dc DocumentController) AddCollaborator(ctx *gin.Context) {
	documentId := ctx.Param("document_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var newCollaborator model.DocumentCollaborator
	if err := ctx.ShouldBind(&newCollaborator); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid collaborator data", util.GenerateErrorMessages(err), nil)
		return
	}

	if !newCollaborator.Role.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown collaborator role", nil, gin.H{"role": newCollaborator.Role})
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
		return
	}

	allowed, err := dc.canEditDocument(ctx, document, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to check permissions", err, nil)
		return
	}
	if !allowed {
		util.ResponseFailed(ctx, http.StatusForbidden, "You do not have permission to add collaborators", nil, nil)
		return
	}

	user, err := dc.app.Repository.User.GetById(ctx, nil, newCollaborator.UserID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", err, nil)
		return
	}

	newCollaborator.DocumentID = documentId
	newCollaborator.AddedByID = authUser.ID

	collaborator, err := dc.app.Repository.Collaborator.Add(ctx, nil, newCollaborator)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.ResponseFailed(ctx, http.StatusConflict, "User already has this role on the document", util.GenerateErrorMessages(err, "role"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to add collaborator", err, nil)
		return
	}

	if user.Email != "" {
		username := strings.TrimSpace(user.FirstName + " " + user.LastName)
		addedBy := strings.TrimSpace(authUser.FirstName + " " + authUser.LastName)
		if _, err := dc.app.Mailer.Send(mailer.COLLABORATOR_ADDED_TEMPLATE, username, user.Email, gin.H{
			"Username":       username,
			"DocumentNumber": document.DocumentNumber,
			"Role":           string(collaborator.Role),
			"AddedBy":        addedBy,
		}); err != nil {
			dc.app.Logger.Warnf("Failed to send collaborator notice to %s: %v", user.Email, err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"collaborator": collaborator,
	})
}

// RemoveCollaborator deletes the collaborator row. Only the document creator
// may do this.
func (dc DocumentController) RemoveCollaborator(ctx *gin.Context) {
	documentId := ctx.Param("document_id")
	collaboratorId := ctx.Param("collaborator_id")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
		return
	}

	if document.CreatedByID != authUser.ID {
		util.ResponseFailed(ctx, http.StatusForbidden, "Only the document creator can remove collaborators", nil, nil)
		return
	}

	if err := dc.app.Repository.Collaborator.Remove(ctx, nil, documentId, collaboratorId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to remove collaborator", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (dc DocumentController) GetDocumentHistory(ctx *gin.Context) {
	documentId := ctx.Param("document_id")

	history, err := dc.app.Repository.History.ListByDocument(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list history", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"history": history,
	})
}

// ExportDocument renders the document in the requested format, stores the
// file and returns a download link. Supported formats: md, docx, pdf.
func (dc DocumentController) ExportDocument(ctx *gin.Context) {
	documentId := ctx.Param("document_id")
	format := ctx.Param("format")

	authUser, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", err, nil)
		return
	}

	documentDate := time.Now()
	if document.DocumentDate != nil {
		documentDate = *document.DocumentDate
	}

	tmpPath, err := dc.renderExport(document, documentDate, format)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, err.Error(), util.GenerateErrorMessages(err, "format"), nil)
		return
	}
	defer os.Remove(tmpPath)

	info, err := util.UploadFileToS3ByPath(tmpPath, &util.FileUploadOptions{
		DirectoryPath: util.GetDocumentExportDirectoryPath(documentId),
		UniquePrefix:  true,
		Bucket:        dc.app.Config.Minio.BUCKET,
		S3:            dc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store export", err, nil)
		return
	}

	file, err := dc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       fmt.Sprintf("%s.%s", document.DocumentNumber, format),
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save export record", err, nil)
		return
	}

	if err := dc.app.Repository.Document.SetExportFile(ctx, nil, documentId, format, file.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to link export", err, nil)
		return
	}

	if err := dc.app.Repository.History.Append(ctx, nil, documentId, authUser.ID, constant.HistoryActionExport, format, ""); err != nil {
		dc.app.Logger.Warnf("Failed to append export history for document %s: %v", documentId, err)
	}

	url, err := file.ToPresignedUrl(ctx, dc.app.S3)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate download link", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file": file,
		"url":  url,
	})
}

// renderExport writes the rendered document to a temp file and returns its
// path. The caller removes the file.
func (dc DocumentController) renderExport(document *model.GeneratedDocument, date time.Time, format string) (string, error) {
	switch format {
	case "md":
		tmp, err := util.CreateTemp("export_*.md")
		if err != nil {
			return "", err
		}
		defer tmp.Close()
		if _, err := tmp.WriteString(orderdoc.DocumentMarkdown(document.DocumentNumber, date, document.Content)); err != nil {
			os.Remove(tmp.Name())
			return "", err
		}
		return tmp.Name(), nil

	case "docx":
		var buf bytes.Buffer
		if err := orderdoc.RenderDocumentDocx(&buf, document.DocumentNumber, orderdoc.FormatShortDate(date), document.Content); err != nil {
			return "", err
		}
		tmp, err := util.CreateTemp("export_*.docx")
		if err != nil {
			return "", err
		}
		defer tmp.Close()
		if _, err := tmp.Write(buf.Bytes()); err != nil {
			os.Remove(tmp.Name())
			return "", err
		}
		return tmp.Name(), nil

	case "pdf":
		cfg := orderdoc.NewDefaultConfig()
		renderer, err := orderdoc.NewPdfRenderer(cfg, "")
		if err != nil {
			return "", err
		}
		tmp, err := cfg.CreateTemp("export_*.pdf")
		if err != nil {
			return "", err
		}
		tmpPath := tmp.Name()
		tmp.Close()
		if err := renderer.RenderDocumentPdf(document.DocumentNumber, date, document.Content, tmpPath); err != nil {
			os.Remove(tmpPath)
			return "", err
		}
		if err := dc.stampShareQRCode(cfg, document, tmpPath); err != nil {
			dc.app.Logger.Warnf("Failed to stamp QR code on export for document %s: %v", document.ID, err)
		}
		return tmpPath, nil
	}

	return "", fmt.Errorf("unsupported export format %q, supported formats: md, docx, pdf", format)
}

// stampShareQRCode embeds the document share link as a QR code in the bottom
// right corner of every page.
func (dc DocumentController) stampShareQRCode(cfg *orderdoc.Config, document *model.GeneratedDocument, pdfPath string) error {
	if document.ShareToken == "" {
		return nil
	}

	qrTmp, err := cfg.CreateTemp("qr_*.png")
	if err != nil {
		return err
	}
	qrPath := qrTmp.Name()
	qrTmp.Close()
	defer os.Remove(qrPath)

	shareLink := fmt.Sprintf("%s/api/v1/documents/shared/%s", dc.app.Config.APP_URL, document.ShareToken)
	if err := orderdoc.GenerateQRCode(shareLink, qrPath, 100); err != nil {
		return err
	}

	return orderdoc.EmbedQRCodeToPdf(pdfPath, pdfPath, qrPath, nil)
}
