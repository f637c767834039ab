package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reelstudio/config"
	"reelstudio/publish"
	"reelstudio/store"
	"reelstudio/types"
)

// RegisterJobRoutes registers job polling and publishing endpoints.
func RegisterJobRoutes(r *gin.Engine, st store.JobStore, publisher Publisher) {
	g := r.Group("/api/jobs")
	g.GET("", handleListJobs(st))
	g.GET("/:id", handleGetJob(st))
	g.POST("/:id/publish", handlePublishJob(st, publisher))
}

// handleGetJob is the polling endpoint: clients call it at a fixed interval
// until State is terminal.
func handleGetJob(st store.JobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		job, err := st.Get(c.Request.Context(), c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load job"})
			return
		}
		c.JSON(http.StatusOK, job)
	}
}

func handleListJobs(st store.JobStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := st.Recent(c.Request.Context(), config.RecentJobsCount)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

// handlePublishJob uploads a completed job's video to YouTube.
func handlePublishJob(st store.JobStore, publisher Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publisher == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "publishing is not configured"})
			return
		}

		job, err := st.Get(c.Request.Context(), c.Param("id"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load job"})
			return
		}
		if job.State != types.StateComplete || job.VideoPath == "" {
			c.JSON(http.StatusConflict, gin.H{"error": "job has no finished video"})
			return
		}

		title := job.Prompt
		if title == "" {
			title = job.Script
		}
		videoID, err := publisher.Publish(job.VideoPath, publish.BuildMetadata(title))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		job.YouTubeID = videoID
		if err := st.Save(c.Request.Context(), *job); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save job"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"youtube_id": videoID})
	}
}
