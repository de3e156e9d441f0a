package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veloura/storefront/internal/prefs"
)

// PrefsController handles HTTP requests for the preference store.
type PrefsController struct {
	store *prefs.Store
}

// NewPrefsController creates a new PrefsController with the given store.
func NewPrefsController(store *prefs.Store) *PrefsController {
	return &PrefsController{store: store}
}

// GetTheme handles the HTTP GET request for the stored theme name.
func (pc *PrefsController) GetTheme(c *gin.Context) {
	theme, err := pc.store.Theme()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// ThemeRequest represents the request body for storing a theme name. The
// value is free-form; nothing validates it against a schema.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// PutTheme handles the HTTP PUT request for storing the theme name.
func (pc *PrefsController) PutTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := pc.store.SetTheme(req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
