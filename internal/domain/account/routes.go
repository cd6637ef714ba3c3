package account

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	acc := rg.Group("/account")
	{
		acc.POST("/register", h.Register)
		acc.GET("/balance", h.Balance)
		acc.GET("/referrals", h.Referrals)
	}
}

// RegisterAdminRoutes mounts the user lookup behind the admin guard.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id", h.UserInfo)
}
