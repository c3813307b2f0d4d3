package model

import (
	"time"

	"github.com/azhuravlev/diplomdocs/internal/constant"
	"gorm.io/datatypes"
)

type GeneratedDocument struct {
	BaseModel
	DocumentNumber string     `gorm:"type:varchar(100);not null;unique" json:"documentNumber" form:"documentNumber"`
	DocumentDate   *time.Time `gorm:"type:date;not null" json:"documentDate" form:"documentDate"`

	TemplateID string         `gorm:"type:text;not null" json:"templateId" form:"templateId" binding:"required"`
	Template   *OrderTemplate `gorm:"constraint:OnDelete:CASCADE" json:"template,omitempty" form:"-"`

	// Exactly one of StudentID/GroupID is set, depending on the subject
	StudentID string   `gorm:"type:text;default:null" json:"studentId" form:"studentId"`
	Student   *Student `gorm:"constraint:OnDelete:CASCADE" json:"student,omitempty" form:"-"`
	GroupID   string   `gorm:"type:text;default:null" json:"groupId" form:"groupId"`
	Group     *Group   `gorm:"constraint:OnDelete:CASCADE" json:"group,omitempty" form:"-"`

	DocumentData datatypes.JSONMap       `gorm:"type:jsonb;default:'{}'" json:"documentData" form:"documentData"`
	Content      string                  `gorm:"type:text;default:null" json:"content" form:"content"`
	Status       constant.DocumentStatus `gorm:"type:text;default:'draft'" json:"status" form:"status"`

	// Public share token, nanoid
	ShareToken string `gorm:"type:text;default:null" json:"shareToken" form:"-"`

	MarkdownFileID string `gorm:"type:text;default:null" json:"markdownFileId" form:"-"`
	MarkdownFile   *File  `gorm:"foreignKey:MarkdownFileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"markdownFile,omitempty" form:"-"`
	DocxFileID     string `gorm:"type:text;default:null" json:"docxFileId" form:"-"`
	DocxFile       *File  `gorm:"foreignKey:DocxFileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"docxFile,omitempty" form:"-"`
	PdfFileID      string `gorm:"type:text;default:null" json:"pdfFileId" form:"-"`
	PdfFile        *File  `gorm:"foreignKey:PdfFileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pdfFile,omitempty" form:"-"`

	CreatedByID string `gorm:"type:text;not null" json:"createdById" form:"-"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"createdBy,omitempty" form:"-"`

	Collaborators []DocumentCollaborator `gorm:"foreignKey:DocumentID" json:"collaborators,omitempty" form:"-"`
}

func (gd GeneratedDocument) TableName() string {
	return "generated_documents"
}
