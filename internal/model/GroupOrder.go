package model

import (
	"time"

	"github.com/azhuravlev/diplomdocs/internal/constant"
)

type GroupOrder struct {
	BaseModel
	OrderNumber string     `gorm:"type:varchar(50);not null;unique" json:"orderNumber" form:"orderNumber"`
	OrderDate   *time.Time `gorm:"type:date;not null" json:"orderDate" form:"orderDate"`

	GroupID string `gorm:"type:text;not null" json:"groupId" form:"groupId" binding:"required"`
	Group   *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"group,omitempty" form:"-"`

	StudyForm constant.StudyForm `gorm:"type:text;default:'full_time'" json:"studyForm" form:"studyForm"`
	Direction string             `gorm:"type:varchar(200);not null" json:"direction" form:"direction" binding:"required"`
	Note      string             `gorm:"type:text;default:null" json:"note" form:"note"`

	CreatedByID string `gorm:"type:text;default:null" json:"createdById" form:"-"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-" form:"-"`
}

func (o GroupOrder) TableName() string {
	return "group_orders"
}
