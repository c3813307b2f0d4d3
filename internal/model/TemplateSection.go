package model

import "gorm.io/datatypes"

type TemplateSection struct {
	BaseModel
	TemplateID string         `gorm:"type:text;not null" json:"templateId" form:"templateId"`
	Template   *OrderTemplate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`

	Title   string `gorm:"type:varchar(200);not null" json:"title" form:"title" binding:"required,strNotEmpty,cmax=200"`
	Content string `gorm:"type:text;default:null" json:"content" form:"content"`
	Order   int    `gorm:"type:int;not null;default:0" json:"order" form:"order"`

	AvailableFields datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"availableFields" form:"availableFields"`
	// Stored for forward compatibility, never evaluated when rendering
	DisplayConditions datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"displayConditions" form:"displayConditions"`

	IsRequired   bool `gorm:"type:boolean;default:false" json:"isRequired" form:"isRequired"`
	CanBeDeleted bool `gorm:"type:boolean;default:true" json:"canBeDeleted" form:"canBeDeleted"`
	CanBeEdited  bool `gorm:"type:boolean;default:true" json:"canBeEdited" form:"canBeEdited"`
}

func (ts TemplateSection) TableName() string {
	return "template_sections"
}
