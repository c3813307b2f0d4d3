package model

import "strings"

type Student struct {
	BaseModel
	LastName   string `gorm:"type:varchar(50);not null" json:"lastName" form:"lastName" binding:"required"`
	FirstName  string `gorm:"type:varchar(50);not null" json:"firstName" form:"firstName" binding:"required"`
	Patronymic string `gorm:"type:varchar(50);default:null" json:"patronymic" form:"patronymic"`
	// Student ticket number, e.g. 2021-0401
	StudentID string `gorm:"type:varchar(20);not null;unique" json:"studentId" form:"studentId" binding:"required"`
	Email     string `gorm:"type:text;default:null" json:"email" form:"email"`
	Phone     string `gorm:"type:varchar(20);default:null" json:"phone" form:"phone"`

	GroupID string `gorm:"type:text;default:null" json:"groupId" form:"groupId"`
	Group   *Group `gorm:"constraint:OnDelete:SET NULL" json:"group,omitempty" form:"-"`

	PhotoFileID string `gorm:"type:text;default:null" json:"photoFileId" form:"-"`
	PhotoFile   *File  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"photoFile,omitempty" form:"-"`

	UserID string `gorm:"type:text;default:null" json:"userId" form:"userId"`
	User   *User  `gorm:"constraint:OnDelete:SET NULL" json:"-" form:"-"`

	DiplomaProject *DiplomaProject `gorm:"foreignKey:StudentID" json:"diplomaProject,omitempty" form:"-"`
}

func (s Student) TableName() string {
	return "students"
}

// FullName returns "Фамилия Имя Отчество", skipping an absent patronymic.
func (s Student) FullName() string {
	parts := []string{s.LastName, s.FirstName}
	if s.Patronymic != "" {
		parts = append(parts, s.Patronymic)
	}
	return strings.Join(parts, " ")
}
