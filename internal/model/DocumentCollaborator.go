package model

import "github.com/azhuravlev/diplomdocs/internal/constant"

type DocumentCollaborator struct {
	BaseModel
	DocumentID string             `gorm:"type:text;not null;uniqueIndex:idx_document_user_role" json:"documentId" form:"documentId"`
	Document   *GeneratedDocument `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`

	UserID string `gorm:"type:text;not null;uniqueIndex:idx_document_user_role" json:"userId" form:"userId" binding:"required"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty" form:"-"`

	Role constant.CollaboratorRole `gorm:"type:text;not null;uniqueIndex:idx_document_user_role" json:"role" form:"role" binding:"required"`

	CanEdit    bool `gorm:"type:boolean;default:false" json:"canEdit" form:"canEdit"`
	CanComment bool `gorm:"type:boolean;default:true" json:"canComment" form:"canComment"`
	CanApprove bool `gorm:"type:boolean;default:false" json:"canApprove" form:"canApprove"`
	CanSign    bool `gorm:"type:boolean;default:false" json:"canSign" form:"canSign"`

	IsActive bool `gorm:"type:boolean;default:true" json:"isActive" form:"isActive"`

	AddedByID string `gorm:"type:text;default:null" json:"addedById" form:"-"`
	AddedBy   *User  `gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL" json:"-" form:"-"`
}

func (dc DocumentCollaborator) TableName() string {
	return "document_collaborators"
}
