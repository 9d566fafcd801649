package api

import (
	"errors"                         // Error matching
	"image_gallery/internal/session" // Session store
	"image_gallery/internal/store"   // Identity store
	"image_gallery/internal/utils"   // Utility functions
	"net/http"                       // HTTP status codes
	"regexp"                         // Regular expressions
	"strings"                        // String manipulation
	"time"                           // Session TTLs

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Session token ids
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`    // Username must be provided
	Email    string `json:"email" binding:"required,email"` // Email must be provided and well-formed
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
	Remember bool   `json:"remember"`                       // Extends the session lifetime
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// isValidUsername checks if the username contains only letters and digits
func isValidUsername(username string) bool {
	matched, _ := regexp.MatchString(`^[A-Za-z0-9]+$`, username) // Regex to match alphanumeric characters only
	return matched                                               // Return whether it matched
}

// isValidPassword checks if the password length is between 8 and 72 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72 // bcrypt input is capped at 72 bytes
}

// RegisterHandler creates a new account
func RegisterHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate username and password
		if !isValidUsername(req.Username) {
			// If username is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be alphanumeric"})
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			// If password is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-72 characters"})
			return
		}
		// Create user with lowercase username and email to ensure uniqueness
		user, err := users.Register(strings.ToLower(req.Username), strings.ToLower(req.Email), req.Password)
		if err != nil {
			// Duplicate email or username is a conflict, everything else is on us
			if errors.Is(err, store.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email or username already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // Username
		}).Info("User registered")
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "id": user.ID})
	}
}

// LoginHandler authenticates a user, opens a session and returns a JWT token
func LoginHandler(users *store.UserStore, sessions *session.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Verify the credentials
		user, err := users.Authenticate(strings.ToLower(req.Email), req.Password)
		if err != nil {
			// Unknown email and wrong password look the same to the caller
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Session lifetime follows the remember flag
		ttl := session.DefaultTTL
		if req.Remember {
			ttl = session.RememberTTL
		}
		sessionID := uuid.NewString() // One session per login
		if err := sessions.Save(c.Request.Context(), sessionID, user.ID, ttl); err != nil {
			// If the session cannot be stored, fail the login
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
			return
		}
		// Generate JWT token tied to the session
		token, err := utils.GenerateJWT(user.ID, sessionID, jwtSecret, ttl)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // User ID
			"remember":  req.Remember,                    // Remember flag
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User logged in")
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// LogoutHandler revokes the current session
func LogoutHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, exists := c.Get("sessionID") // Set by the JWT middleware
		// Check if sessionID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Revoke the session; the token is dead from here on
		if err := sessions.Revoke(c.Request.Context(), sessionID.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
