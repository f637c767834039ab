package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"reelstudio/generation"
	"reelstudio/logger"
	"reelstudio/studio"
)

// RegisterGenerationRoutes registers job submission endpoints.
func RegisterGenerationRoutes(r *gin.Engine, svc *studio.Service) {
	g := r.Group("/api")
	g.POST("/generate", handleGenerate(svc))
	g.POST("/director", handleDirector(svc))
}

// handleGenerate accepts a single-prompt request, starts the job
// asynchronously, and returns 202 with the job id for polling.
func handleGenerate(svc *studio.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generation.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		job := svc.NewGenerateJob(req)
		logger.Info().Str("job", job.ID).Msg("generation job accepted")

		go svc.RunGenerate(context.Background(), job, req)

		c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID, "state": job.State})
	}
}

// DirectorRequest is the POST /api/director body: a script plus optional
// generation settings applied to every scene.
type DirectorRequest struct {
	Script string `json:"script"`
	generation.Request
}

func handleDirector(svc *studio.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DirectorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		if req.Script == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "script is required"})
			return
		}
		if err := req.Request.ValidateSettings(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		job := svc.NewDirectorJob(req.Script)
		logger.Info().Str("job", job.ID).Msg("director job accepted")

		go svc.RunDirector(context.Background(), job, req.Request)

		c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID, "state": job.State})
	}
}
