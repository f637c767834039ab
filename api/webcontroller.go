package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"reelstudio/config"
)

//go:embed web/index.html
var webFS embed.FS

var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

// RegisterWebRoutes serves the studio page and finished videos.
func RegisterWebRoutes(r *gin.Engine, outputDir string) {
	r.GET("/", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		_ = indexTemplate.Execute(c.Writer, gin.H{
			"VideoModel": config.DefaultVideoModel,
		})
	})

	// Finished videos are plain files; the browser streams them directly.
	r.Static("/videos", outputDir)
}
