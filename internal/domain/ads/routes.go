package ads

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the viewer-facing ad endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/ads")
	{
		ads.GET("", h.ListAds)
		ads.POST("/:id/view", h.ViewAd)
	}
}

// RegisterAdminRoutes mounts the ad management endpoints; the caller is
// expected to guard the group with the admin middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/ads")
	{
		ads.POST("", h.CreateAd)
		ads.POST("/:id/toggle", h.ToggleAd)
	}
}
