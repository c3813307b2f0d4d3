package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Documents(r *gin.RouterGroup, dc *controller.DocumentController, middleware *middleware.Middleware) {
	// Share links work without auth.
	r.GET("/v1/documents/shared/:share_token", dc.GetSharedDocument)

	v1 := r.Group("/v1/documents")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", dc.GetDocuments)
		v1.POST("", dc.GenerateDocument)
		v1.GET("/:document_id", dc.GetDocumentById)
		v1.PATCH("/:document_id/content", dc.UpdateDocumentContent)
		v1.PATCH("/:document_id/status", dc.UpdateDocumentStatus)

		v1.GET("/:document_id/collaborators", dc.GetCollaborators)
		v1.POST("/:document_id/collaborators", dc.AddCollaborator)
		v1.DELETE("/:document_id/collaborators/:collaborator_id", dc.RemoveCollaborator)

		v1.GET("/:document_id/history", dc.GetDocumentHistory)
		v1.POST("/:document_id/export/:format", dc.ExportDocument)
	}
}
