package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/azhuravlev/diplomdocs/internal/constant"
	"github.com/azhuravlev/diplomdocs/internal/model"
	"github.com/azhuravlev/diplomdocs/internal/repository"
	"github.com/azhuravlev/diplomdocs/internal/util"
	"github.com/azhuravlev/diplomdocs/pkg/orderdoc"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemplateController struct {
	*baseController
}

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// extractPlaceholders returns placeholder keys in order of first appearance.
func extractPlaceholders(content string) []string {
	seen := make(map[string]bool)
	keys := []string{}
	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			keys = append(keys, match[1])
		}
	}
	return keys
}

func (tc TemplateController) GetTemplates(ctx *gin.Context) {
	page, pageSize := util.ParsePagination(ctx)
	filter := repository.TemplateFilter{
		Type:       constant.TemplateType(ctx.Query("type")),
		ActiveOnly: ctx.Query("activeOnly") == "true",
	}

	templates, total, err := tc.app.Repository.OrderTemplate.List(ctx, nil, filter, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list templates", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"templates": templates,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (tc TemplateController) GetTemplateById(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	template, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"template": template,
	})
}

func (tc TemplateController) CreateTemplate(ctx *gin.Context) {
	authUser, err := tc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	var newTemplate model.OrderTemplate
	if err := ctx.ShouldBind(&newTemplate); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid template data", util.GenerateErrorMessages(err), nil)
		return
	}

	if !newTemplate.Type.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown template type", nil, gin.H{"type": newTemplate.Type})
		return
	}

	newTemplate.CreatedByID = authUser.ID

	template, err := tc.app.Repository.OrderTemplate.Create(ctx, nil, newTemplate)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create template", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"template": template,
	})
}

func (tc TemplateController) UpdateTemplate(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	var updates model.OrderTemplate
	if err := ctx.ShouldBind(&updates); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid template data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	if err := tc.app.Repository.OrderTemplate.Update(ctx, nil, templateId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update template", err, nil)
		return
	}

	template, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"template": template,
	})
}

func (tc TemplateController) DeleteTemplate(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	if err := tc.app.Repository.OrderTemplate.Delete(ctx, nil, templateId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete template", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// SetTemplateContent replaces the template body. Available fields default to
// the placeholders found in the new content.
func (tc TemplateController) SetTemplateContent(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	var body struct {
		Content         string   `json:"content" form:"content" binding:"required,strNotEmpty"`
		AvailableFields []string `json:"availableFields" form:"availableFields"`
	}
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Content is required", util.GenerateErrorMessages(err, "content"), nil)
		return
	}

	if _, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	fields := body.AvailableFields
	if len(fields) == 0 {
		fields = extractPlaceholders(body.Content)
	}
	fieldsJson, err := json.Marshal(fields)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to encode fields", err, nil)
		return
	}

	if err := tc.app.Repository.OrderTemplate.SetContent(ctx, nil, templateId, body.Content, datatypes.JSON(fieldsJson)); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update content", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"availableFields": fields,
	})
}

// GetTemplateFields lists the fields a document generated from this template
// can be filled with, system fields included.
func (tc TemplateController) GetTemplateFields(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	template, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	var availableFields []string
	if len(template.AvailableFields) > 0 {
		if err := json.Unmarshal(template.AvailableFields, &availableFields); err != nil {
			tc.app.Logger.Warnf("Template %s has malformed available fields: %v", templateId, err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"availableFields": availableFields,
		"placeholders":    extractPlaceholders(template.Content),
		"systemFields":    []string{"object_type", "object_id", "object_name", "current_date", "user"},
	})
}

// PreviewTemplate substitutes the posted fields into the template content
// without persisting anything.
func (tc TemplateController) PreviewTemplate(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	var body struct {
		Fields []fieldInput `json:"fields" form:"fields"`
	}
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid fields", util.GenerateErrorMessages(err), nil)
		return
	}

	template, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	data := orderdoc.NewData()
	for _, f := range body.Fields {
		data.Set(f.Key, f.Value)
	}

	util.ResponseSuccess(ctx, gin.H{
		"preview": orderdoc.Substitute(template.Content, data),
	})
}

// UploadTemplateFile attaches a source document (e.g. a docx blank) to the
// template.
func (tc TemplateController) UploadTemplateFile(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	template, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File is required", util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	if err := util.ValidateUploadedFile(fileHeader, constant.MaxDiplomaFileSize, constant.AllowedDiplomaFileExtensions); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, err.Error(), util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetTemplateDirectoryPath(templateId),
		UniquePrefix:  true,
		Bucket:        tc.app.Config.Minio.BUCKET,
		S3:            tc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store file", err, nil)
		return
	}

	file, err := tc.app.Repository.File.Create(ctx, nil, &model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Size:           info.Size,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save file record", err, nil)
		return
	}

	if err := tc.app.Repository.OrderTemplate.SetTemplateFile(ctx, nil, templateId, file.ID); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to link file", err, nil)
		return
	}

	if template.TemplateFile != nil {
		if err := template.TemplateFile.Delete(ctx, tc.app.S3); err != nil {
			tc.app.Logger.Warnf("Failed to remove previous template object: %v", err)
		}
		if err := tc.app.Repository.File.Delete(ctx, nil, template.TemplateFile.ID); err != nil {
			tc.app.Logger.Warnf("Failed to remove previous template file record: %v", err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"file": file,
	})
}

func (tc TemplateController) GetTemplateSections(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	sections, err := tc.app.Repository.TemplateSection.GetByTemplateId(ctx, nil, templateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list sections", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"sections": sections,
	})
}

func (tc TemplateController) CreateTemplateSection(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	var newSection model.TemplateSection
	if err := ctx.ShouldBind(&newSection); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid section data", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := tc.app.Repository.OrderTemplate.GetById(ctx, nil, templateId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", err, nil)
		return
	}

	newSection.TemplateID = templateId

	section, err := tc.app.Repository.TemplateSection.Create(ctx, nil, newSection)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create section", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"section": section,
	})
}

func (tc TemplateController) UpdateTemplateSection(ctx *gin.Context) {
	sectionId := ctx.Param("section_id")

	var updates model.TemplateSection
	if err := ctx.ShouldBind(&updates); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid section data", util.GenerateErrorMessages(err), nil)
		return
	}

	section, err := tc.app.Repository.TemplateSection.GetById(ctx, nil, sectionId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Section not found", err, nil)
		return
	}

	if !section.CanBeEdited {
		util.ResponseFailed(ctx, http.StatusForbidden, "Section is locked for editing", nil, nil)
		return
	}

	if err := tc.app.Repository.TemplateSection.Update(ctx, nil, sectionId, updates); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update section", err, nil)
		return
	}

	updated, err := tc.app.Repository.TemplateSection.GetById(ctx, nil, sectionId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get section", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"section": updated,
	})
}

func (tc TemplateController) DeleteTemplateSection(ctx *gin.Context) {
	sectionId := ctx.Param("section_id")

	section, err := tc.app.Repository.TemplateSection.GetById(ctx, nil, sectionId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Section not found", err, nil)
		return
	}

	if !section.CanBeDeleted {
		util.ResponseFailed(ctx, http.StatusForbidden, "Section cannot be deleted", nil, nil)
		return
	}

	if err := tc.app.Repository.TemplateSection.Delete(ctx, nil, sectionId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete section", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// ReorderTemplateSections rewrites section order from the posted id list.
func (tc TemplateController) ReorderTemplateSections(ctx *gin.Context) {
	templateId := ctx.Param("template_id")

	var body struct {
		SectionIds []string `json:"sectionIds" form:"sectionIds" binding:"required"`
	}
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Section ids are required", util.GenerateErrorMessages(err, "sectionIds"), nil)
		return
	}

	if err := tc.app.Repository.TemplateSection.Reorder(ctx, nil, templateId, body.SectionIds); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to reorder sections", err, nil)
		return
	}

	sections, err := tc.app.Repository.TemplateSection.GetByTemplateId(ctx, nil, templateId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list sections", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"sections": sections,
	})
}
