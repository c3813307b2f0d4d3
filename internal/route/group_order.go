package route

import (
	"github.com/azhuravlev/diplomdocs/internal/controller"
	"github.com/azhuravlev/diplomdocs/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_GroupOrders(r *gin.RouterGroup, oc *controller.GroupOrderController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/group-orders")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", oc.GetGroupOrders)
		v1.POST("", oc.CreateGroupOrder)
		v1.GET("/:order_id", oc.GetGroupOrderById)
		v1.GET("/:order_id/preview", oc.PreviewGroupOrder)
		v1.GET("/:order_id/docx", oc.ExportGroupOrderDocx)
	}
}
