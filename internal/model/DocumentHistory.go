package model

import "github.com/azhuravlev/diplomdocs/internal/constant"

// DocumentHistory rows are append-only, one per action on a document.
type DocumentHistory struct {
	BaseModel
	DocumentID string             `gorm:"type:text;not null;index" json:"documentId" form:"documentId"`
	Document   *GeneratedDocument `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`

	UserID string `gorm:"type:text;not null" json:"userId" form:"userId"`
	User   *User  `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty" form:"-"`

	Action  constant.HistoryAction `gorm:"type:text;not null" json:"action" form:"action" binding:"required"`
	Changes string                 `gorm:"type:text;default:null" json:"changes" form:"changes"`
	Comment string                 `gorm:"type:text;default:null" json:"comment" form:"comment"`
}

func (dh DocumentHistory) TableName() string {
	return "document_history"
}
