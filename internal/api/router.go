package api

import (
	"image_gallery/internal/gallery"    // Feed projections
	"image_gallery/internal/middleware" // Auth middleware
	"image_gallery/internal/session"    // Session store
	"image_gallery/internal/storage"    // Binary content area
	"image_gallery/internal/store"      // Stores
	"net/http"                          // HTTP status codes

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires the stores and handlers onto a Gin engine
func NewRouter(db *gorm.DB, rdb *redis.Client, files *storage.Disk, jwtSecret string) *gin.Engine {
	users := store.NewUserStore(db)        // Identity store
	media := store.NewMediaStore(db, files) // Media store over DB rows and disk content
	feeds := gallery.NewService(media)     // Read-side projections
	sessions := session.NewStore(rdb)      // Redis-backed sessions

	r := gin.Default()                                         // Gin router instance
	r.MaxMultipartMemory = 8 << 20                             // Spool larger uploads to disk
	authed := middleware.JWTAuthMiddleware(jwtSecret, sessions) // JWT + live session check

	// Liveness endpoint
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/register", RegisterHandler(users))                    // Registration endpoint
	authGroup.POST("/login", LoginHandler(users, sessions, jwtSecret))     // Login endpoint
	authGroup.POST("/logout", authed, LogoutHandler(sessions))             // Logout endpoint

	// Public read side
	r.GET("/feed", GlobalFeedHandler(feeds))              // Global feed
	r.GET("/feed/tag/:name", TagFeedHandler(feeds))       // Per-tag feed
	r.GET("/media/:id/content", DownloadHandler(media))   // Content retrieval

	// Media routes (protected by JWT)
	mediaGroup := r.Group("/media")
	mediaGroup.Use(authed)                                        // Protect with JWT middleware
	mediaGroup.POST("", UploadHandler(media))                     // Upload endpoint
	mediaGroup.PATCH("/:id", UpdateTitleHandler(media))           // Title update endpoint
	mediaGroup.DELETE("/:id", DeleteMediaHandler(media, users))   // Delete endpoint

	// My posts (protected by JWT)
	r.GET("/feed/me", authed, MyFeedHandler(feeds)) // Per-owner feed

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(authed, middleware.AdminOnlyMiddleware(db)) // Protect with JWT and AdminOnly middleware
	adminGroup.GET("/feed", AdminFeedHandler(feeds))           // Admin feed endpoint

	return r
}
