package model

import (
	"github.com/azhuravlev/diplomdocs/internal/constant"
	"gorm.io/datatypes"
)

type DiplomaAIAnalysis struct {
	BaseModel
	DiplomaProjectID string          `gorm:"type:text;not null;uniqueIndex" json:"diplomaProjectId" form:"diplomaProjectId"`
	DiplomaProject   *DiplomaProject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`

	FormatScore    int               `gorm:"type:int;default:0" json:"formatScore" form:"formatScore"`
	FormatIssues   datatypes.JSON    `gorm:"type:jsonb;default:'[]'" json:"formatIssues" form:"formatIssues"`
	FormatMetadata datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"formatMetadata" form:"formatMetadata"`

	ReviewText  string `gorm:"type:text;default:null" json:"reviewText" form:"reviewText"`
	ReviewGrade string `gorm:"type:varchar(50);default:null" json:"reviewGrade" form:"reviewGrade"`
	ReviewTime  string `gorm:"type:varchar(50);default:null" json:"reviewTime" form:"reviewTime"`

	Questions       datatypes.JSON    `gorm:"type:jsonb;default:'[]'" json:"questions" form:"questions"`
	ContentAnalysis datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"contentAnalysis" form:"contentAnalysis"`

	AIProvider   string            `gorm:"type:varchar(50);default:null" json:"aiProvider" form:"aiProvider"`
	RawResponse  string            `gorm:"type:text;default:null" json:"rawResponse" form:"-"`
	FileMetadata datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"fileMetadata" form:"fileMetadata"`

	Status constant.AnalysisStatus `gorm:"type:text;default:'pending'" json:"status" form:"status"`
}

func (a DiplomaAIAnalysis) TableName() string {
	return "diploma_ai_analyses"
}
