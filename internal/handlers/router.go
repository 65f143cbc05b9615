package handlers

import (
	"memoapp/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("memoapp_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowHome)
	r.GET("/about", h.About)
	r.GET("/login", h.ShowLogin)
	r.GET("/signup", h.ShowSignup)
	r.POST("/logout", h.Logout)

	// Credential endpoints get the per-IP limiter
	auth := r.Group("/")
	if rateLimiter != nil {
		auth.Use(h.RateLimitMiddleware(rateLimiter))
	}
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)

	// Protected Routes
	memos := r.Group("/memos")
	memos.Use(h.AuthRequired())
	{
		memos.POST("/", h.CreateMemo)
		memos.GET("/", h.ListMemos)
		memos.PUT("/:memo_id", h.UpdateMemo)
		memos.DELETE("/:memo_id", h.DeleteMemo)
	}

	return r
}
