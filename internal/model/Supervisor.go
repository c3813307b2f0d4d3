package model

import "strings"

type Supervisor struct {
	BaseModel
	LastName       string `gorm:"type:varchar(50);not null" json:"lastName" form:"lastName" binding:"required"`
	FirstName      string `gorm:"type:varchar(50);not null" json:"firstName" form:"firstName" binding:"required"`
	Patronymic     string `gorm:"type:varchar(50);default:null" json:"patronymic" form:"patronymic"`
	AcademicDegree string `gorm:"type:varchar(100);default:null" json:"academicDegree" form:"academicDegree"`
	Position       string `gorm:"type:varchar(100);default:null" json:"position" form:"position"`
	Email          string `gorm:"type:text;default:null" json:"email" form:"email"`
	Phone          string `gorm:"type:varchar(20);default:null" json:"phone" form:"phone"`

	DiplomaProjects []DiplomaProject `gorm:"foreignKey:SupervisorID" json:"diplomaProjects,omitempty" form:"-"`
}

func (s Supervisor) TableName() string {
	return "supervisors"
}

func (s Supervisor) FullName() string {
	parts := []string{s.LastName, s.FirstName}
	if s.Patronymic != "" {
		parts = append(parts, s.Patronymic)
	}
	return strings.Join(parts, " ")
}
