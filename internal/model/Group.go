package model

type Group struct {
	BaseModel
	Name    string `gorm:"type:varchar(20);not null;unique" json:"name" form:"name" binding:"required,strNotEmpty,cmax=20"`
	Faculty string `gorm:"type:varchar(100);not null" json:"faculty" form:"faculty" binding:"required"`
	Course  int    `gorm:"type:int;not null" json:"course" form:"course" binding:"required"`

	Students []Student `gorm:"foreignKey:GroupID" json:"students,omitempty" form:"-"`
}

func (g Group) TableName() string {
	return "groups"
}
