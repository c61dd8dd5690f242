package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/internal/http/handlers"
	"github.com/khanh-nd1204/music-be/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/activate", ah.Activate)
	auth.POST("/resend-mail", ah.ResendMail)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.GET("/refresh", ah.Refresh)

	protected := r.Group("/auth").Use(jwtmw.WithJWT())
	protected.GET("/account", ah.Me)
	protected.POST("/logout", ah.Logout)

	return r
}
