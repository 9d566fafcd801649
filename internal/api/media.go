package api

import (
	"errors"                       // Error matching
	"fmt"                          // Header formatting
	"image_gallery/internal/store" // Media and identity stores
	"net/http"                     // HTTP status codes
	"strconv"                      // String conversion
	"strings"                      // Tag list splitting

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for title updates
type UpdateTitleRequest struct {
	Title string `json:"title" binding:"required"` // New title must be provided
}

// UploadHandler accepts a multipart upload: file (required), title and a
// comma-separated tag list (both optional)
func UploadHandler(media *store.MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		fileHeader, err := c.FormFile("file") // The uploaded file part
		if err != nil {
			// A file part is required
			c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
			return
		}
		title := c.PostForm("title")             // Optional title
		tagNames := splitTags(c.PostForm("tags")) // Optional tag names; unknown ones are dropped by the store
		f, err := fileHeader.Open()               // Open the upload stream
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read upload"})
			return
		}
		defer f.Close() // Release the stream on every path
		// Owner comes from the authenticated identity, never from the request body
		m, err := media.Create(userID.(uint), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), title, f, tagNames)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id":  userID,              // Uploader
				"filename": fileHeader.Filename, // Original filename
				"error":    err.Error(),         // Error message
			}).Error("Upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}
		// Log successful upload
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,     // Uploader
			"media_id": m.ID,       // New media ID
			"filename": m.Filename, // Original filename
			"size":     m.Size,     // Content size
		}).Info("Media uploaded")
		// Return the created media
		c.JSON(http.StatusCreated, gin.H{"message": "Upload successful", "media": m})
	}
}

// DownloadHandler streams the binary content with the original filename as a
// content-disposition hint
func DownloadHandler(media *store.MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id")) // Parse the media id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media id"})
			return
		}
		m, err := media.Get(id) // Fetch the metadata row
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
			return
		}
		f, err := media.Open(m) // Open the content stream
		if err != nil {
			// A row without retrievable content is loud; it breaks the storage invariant
			logrus.WithFields(logrus.Fields{
				"media_id": m.ID,        // Media ID
				"error":    err.Error(), // Error message
			}).Error("Media content missing")
			c.JSON(http.StatusNotFound, gin.H{"error": "Media content not found"})
			return
		}
		defer f.Close() // Release the stream on every path
		contentType := m.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		// Stream the bytes with the original filename as the download hint
		c.DataFromReader(http.StatusOK, m.Size, contentType, f, map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", m.Filename),
		})
	}
}

// UpdateTitleHandler changes a media title; owner-only
func UpdateTitleHandler(media *store.MediaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := parseID(c.Param("id")) // Parse the media id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media id"})
			return
		}
		var req UpdateTitleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		m, err := media.UpdateTitle(id, req.Title, userID.(uint)) // Apply the update
		if err != nil {
			respondStoreError(c, err) // Map the store error onto a status code
			return
		}
		// Return the updated media
		c.JSON(http.StatusOK, gin.H{"message": "Title updated", "media": m})
	}
}

// DeleteMediaHandler removes a media item; owner or admin
func DeleteMediaHandler(media *store.MediaStore, users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := parseID(c.Param("id")) // Parse the media id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media id"})
			return
		}
		// The delete rule needs the requester's role, so load the full identity
		requester, err := users.FindByID(userID.(uint))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := media.Delete(id, requester); err != nil {
			var pd *store.PartialDeleteError
			// A partial delete already removed the row; report it distinctly
			if errors.As(err, &pd) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Media deleted but content cleanup failed", "media_id": pd.MediaID})
				return
			}
			respondStoreError(c, err) // Map the store error onto a status code
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"media_id":     id,             // Deleted media ID
			"requester_id": requester.ID,   // Who deleted it
			"role":         requester.Role, // Owner delete or admin delete
		}).Info("Media deleted")
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
	}
}

// splitTags turns a comma-separated list into trimmed, non-empty names
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parseID parses a decimal path parameter into a primary key
func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return uint(v), err
}

// respondStoreError maps the store error taxonomy onto HTTP status codes
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
	case errors.Is(err, store.ErrTagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
	case errors.Is(err, store.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
