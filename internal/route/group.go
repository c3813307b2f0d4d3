package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Groups(r *gin.RouterGroup, gc *controller.GroupController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/groups")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", gc.GetGroups)
		v1.POST("", gc.CreateGroup)
		v1.GET("/:group_id", gc.GetGroupById)
		v1.PATCH("/:group_id", gc.UpdateGroup)
		v1.DELETE("/:group_id", gc.DeleteGroup)
	}
}
