package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Students(r *gin.RouterGroup, sc *controller.StudentController, oc *controller.GroupOrderController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/students")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", sc.GetStudents)
		v1.POST("", sc.CreateStudent)
		v1.GET("/:student_id", sc.GetStudentById)
		v1.PATCH("/:student_id", sc.UpdateStudent)
		v1.DELETE("/:student_id", sc.DeleteStudent)
		v1.POST("/:student_id/photo", sc.UploadStudentPhoto)

		v1.GET("/:student_id/order", oc.PreviewStudentOrder)
		v1.GET("/:student_id/order/docx", oc.ExportStudentOrderDocx)
	}
}
