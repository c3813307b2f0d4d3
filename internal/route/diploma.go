package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Diplomas(r *gin.RouterGroup, dc *controller.DiplomaController, ac *controller.AnalysisController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/diplomas")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", dc.CreateDiploma)
		v1.GET("/:diploma_id", dc.GetDiplomaById)
		v1.PATCH("/:diploma_id", dc.UpdateDiploma)
		v1.PATCH("/:diploma_id/status", dc.UpdateDiplomaStatus)
		v1.DELETE("/:diploma_id", dc.DeleteDiploma)

		v1.POST("/:diploma_id/file", dc.UploadDiplomaFile)
		v1.GET("/:diploma_id/file", dc.DownloadDiplomaFile)
		v1.DELETE("/:diploma_id/file", dc.DeleteDiplomaFile)

		v1.POST("/:diploma_id/analysis", ac.RunAnalysis)
		v1.GET("/:diploma_id/analysis", ac.GetAnalysis)
	}
}
