package api

import (
	"errors"                         // Error matching
	"image_gallery/internal/domain"  // Importing domain models
	"image_gallery/internal/gallery" // Feed projections
	"image_gallery/internal/store"   // Error taxonomy
	"net/http"                       // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// GlobalFeedHandler returns every media item, newest first
func GlobalFeedHandler(feeds *gallery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := feeds.Global() // Recomputed from current state on every call
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build feed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items}) // Return the feed
	}
}

// MyFeedHandler returns the authenticated user's own posts
func MyFeedHandler(feeds *gallery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		items, err := feeds.ByOwner(userID.(uint)) // The owner's feed
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build feed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items}) // Return the feed
	}
}

// TagFeedHandler returns media carrying the named tag; 404 for tags outside
// the catalog, never an empty valid list
func TagFeedHandler(feeds *gallery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := feeds.ByTag(c.Param("name")) // The per-tag feed
		if err != nil {
			// Unknown tag is not found; anything else is on us
			if errors.Is(err, store.ErrTagNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build feed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items}) // Return the feed
	}
}

// AdminFeedHandler returns the global feed, gated by the admin role
func AdminFeedHandler(feeds *gallery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("currentUser") // Verified identity from the admin middleware
		// Check if the identity exists in context
		if !exists {
			// If not, the middleware chain is misconfigured; treat as forbidden
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		items, err := feeds.Admin(current.(domain.User)) // The admin feed
		if err != nil {
			// The policy check runs again inside the service
			if errors.Is(err, store.ErrForbidden) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build feed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items}) // Return the feed
	}
}
