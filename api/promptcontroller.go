package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reelstudio/prompt"
)

// RegisterPromptRoutes registers prompt tooling endpoints.
func RegisterPromptRoutes(r *gin.Engine, enhancer prompt.Enhancer) {
	g := r.Group("/api/prompt")
	g.POST("/enhance", handleEnhance(enhancer))
	g.GET("/ideas", handleIdeas)
	g.POST("/article", handleArticle)
}

func handleEnhance(enhancer prompt.Enhancer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
			return
		}

		enhanced, err := enhancer.Enhance(c.Request.Context(), req.Prompt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"prompt": enhanced})
	}
}

// handleIdeas returns recent headlines from a feed preset (or raw URL) as
// prompt starting points.
func handleIdeas(c *gin.Context) {
	count := 10
	if v := c.Query("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	ideas, err := prompt.Ideas(c.Request.Context(), c.Query("feed"), count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// handleArticle extracts readable text from a URL as a director script.
func handleArticle(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	script, err := prompt.ScriptFromURL(req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, script)
}
