package model

import (
	"time"

	"github.com/azhuravlev/diplomdocs/internal/constant"
)

type DiplomaProject struct {
	BaseModel
	Topic       string `gorm:"type:text;not null" json:"topic" form:"topic" binding:"required,cmin=3"`
	Description string `gorm:"type:text;default:null" json:"description" form:"description"`

	// uniqueIndex keeps one diploma project per student
	StudentID string   `gorm:"type:text;not null;uniqueIndex" json:"studentId" form:"studentId" binding:"required"`
	Student   *Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"student,omitempty" form:"-"`

	SupervisorID string      `gorm:"type:text;default:null" json:"supervisorId" form:"supervisorId"`
	Supervisor   *Supervisor `gorm:"constraint:OnDelete:SET NULL" json:"supervisor,omitempty" form:"-"`

	RegistrationDate *time.Time             `gorm:"type:date;default:null" json:"registrationDate" form:"registrationDate"`
	Deadline         *time.Time             `gorm:"type:date;default:null" json:"deadline" form:"deadline"`
	Status           constant.DiplomaStatus `gorm:"type:text;default:'registered'" json:"status" form:"status"`

	FileID string `gorm:"type:text;default:null" json:"fileId" form:"-"`
	File   *File  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"file,omitempty" form:"-"`

	AIAnalysis *DiplomaAIAnalysis `gorm:"foreignKey:DiplomaProjectID" json:"aiAnalysis,omitempty" form:"-"`
}

func (dp DiplomaProject) TableName() string {
	return "diploma_projects"
}
