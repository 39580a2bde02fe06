package department

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard gin.HandlerFunc) {
	departments := r.Group("/departments")

	departments.Use(guard)

	{
		departments.GET("", h.List)
		departments.POST("", h.Create)
		departments.POST("/:id", h.Update)
		departments.POST("/:id/delete", h.Delete)
	}
}
