// admin.go - privacy-conscious admin area for contact messages and visits
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const adminLoginPage = `<!DOCTYPE html>
<html>
<head><title>Admin Login</title></head>
<body>
<form method="post" action="/admin/login">
<input name="username" placeholder="Username" required>
<input name="password" type="password" placeholder="Password" required>
<button type="submit">Log in</button>
</form>
</body>
</html>`

func (s *server) initAdminToken() {
	s.adminToken = generateAdminToken()
	s.hashingSalt = generateAdminToken()

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.adminToken)
	}
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIPWith hashes an IP with the per-process salt (consistent per IP).
func hashIPWith(ip, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTrackingMiddleware records a hashed visit for every content
// request. Admin pages, the mail endpoint and Do Not Track requests are
// skipped.
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/healthz") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go s.trackVisitor(hashIPWith(c.ClientIP(), s.hashingSalt), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (s *server) trackVisitor(hashedIP, userAgent, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.RecordVisit(ctx, hashedIP, userAgent, path); err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

func (s *server) adminCredentials() (string, string) {
	username, password := s.cfg.AdminUsername, s.cfg.AdminPassword
	if username == "" {
		username = "admin"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if password == "" {
		password = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	return username, password
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(adminLoginPage))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		adminUsername, adminPassword := s.adminCredentials()

		if subtle.ConstantTimeCompare([]byte(username), []byte(adminUsername)) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1 {
			c.SetCookie("admin_token", s.adminToken, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", hashIPWith(c.ClientIP(), s.hashingSalt))
			c.Redirect(http.StatusFound, "/admin/api/stats")
			return
		}
		log.Printf("Failed admin login attempt from %s", hashIPWith(c.ClientIP(), s.hashingSalt))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/messages", func(c *gin.Context) {
		limit := queryLimit(c, 100)
		messages, err := s.store.ListMessages(c.Request.Context(), limit)
		if err != nil {
			log.Printf("Error loading messages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": messages})
	})

	adminGroup.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		found, err := s.store.DeleteMessage(c.Request.Context(), id)
		if err != nil {
			log.Printf("Error deleting message %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		log.Printf("Message %s deleted by admin from %s", id, hashIPWith(c.ClientIP(), s.hashingSalt))
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.ListVisitors(c.Request.Context(), queryLimit(c, 200))
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visitors"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"visitors": visitors})
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go s.cleanupOldVisitorData()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", hashIPWith(c.ClientIP(), s.hashingSalt))
		c.JSON(http.StatusOK, stats)
	})
}

func queryLimit(c *gin.Context, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || n <= 0 || n > 1000 {
		return def
	}
	return n
}
