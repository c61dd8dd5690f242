package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/internal/config"
	httpx "github.com/khanh-nd1204/music-be/internal/http"
	"github.com/khanh-nd1204/music-be/internal/http/handlers"
	"github.com/khanh-nd1204/music-be/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, resend throttling degraded: %v", err)
	}

	authH := handlers.NewAuthHandlers(c.SessionSvc, c.VerificationSvc, c.AccountRepo, int(cfg.RefreshTTL.Seconds()))
	jwtMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
