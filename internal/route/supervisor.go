package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Supervisors(r *gin.RouterGroup, sc *controller.SupervisorController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/supervisors")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", sc.GetSupervisors)
		v1.POST("", sc.CreateSupervisor)
		v1.GET("/:supervisor_id", sc.GetSupervisorById)
		v1.PATCH("/:supervisor_id", sc.UpdateSupervisor)
		v1.DELETE("/:supervisor_id", sc.DeleteSupervisor)
	}
}
