package model

import (
	"github.com/azhuravlev/diplomdocs/internal/constant"
	"gorm.io/datatypes"
)

type OrderTemplate struct {
	BaseModel
	Name        string                `gorm:"type:varchar(200);not null" json:"name" form:"name" binding:"required,strNotEmpty,cmax=200"`
	Description string                `gorm:"type:text;default:null" json:"description" form:"description"`
	Type        constant.TemplateType `gorm:"type:text;not null" json:"type" form:"type" binding:"required"`

	// Template body with {{field}} placeholders
	Content           string            `gorm:"type:text;default:null" json:"content" form:"content"`
	AvailableFields   datatypes.JSON    `gorm:"type:jsonb;default:'[]'" json:"availableFields" form:"availableFields"`
	DefaultFormatting datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"defaultFormatting" form:"defaultFormatting"`

	TemplateFileID string `gorm:"type:text;default:null" json:"templateFileId" form:"-"`
	TemplateFile   *File  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"templateFile,omitempty" form:"-"`

	IsActive bool `gorm:"type:boolean;default:true" json:"isActive" form:"isActive"`

	CreatedByID string `gorm:"type:text;default:null" json:"createdById" form:"-"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-" form:"-"`

	Sections []TemplateSection `gorm:"foreignKey:TemplateID" json:"sections,omitempty" form:"-"`
}

func (t OrderTemplate) TableName() string {
	return "order_templates"
}
