package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard gin.HandlerFunc) {
	employees := r.Group("/employees")

	employees.Use(guard)

	{
		employees.GET("", h.List)
		employees.POST("", h.Create)
		employees.POST("/:id", h.Update)
		employees.POST("/:id/delete", h.Delete)
	}
}
