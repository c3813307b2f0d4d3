package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Templates(r *gin.RouterGroup, tc *controller.TemplateController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/templates")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", tc.GetTemplates)
		v1.POST("", tc.CreateTemplate)
		v1.GET("/:template_id", tc.GetTemplateById)
		v1.PATCH("/:template_id", tc.UpdateTemplate)
		v1.DELETE("/:template_id", tc.DeleteTemplate)

		v1.PUT("/:template_id/content", tc.SetTemplateContent)
		v1.GET("/:template_id/fields", tc.GetTemplateFields)
		v1.POST("/:template_id/preview", tc.PreviewTemplate)
		v1.POST("/:template_id/file", tc.UploadTemplateFile)

		v1.GET("/:template_id/sections", tc.GetTemplateSections)
		v1.POST("/:template_id/sections", tc.CreateTemplateSection)
		v1.PUT("/:template_id/sections/order", tc.ReorderTemplateSections)
		v1.PATCH("/:template_id/sections/:section_id", tc.UpdateTemplateSection)
		v1.DELETE("/:template_id/sections/:section_id", tc.DeleteTemplateSection)
	}
}
