package config

import "time"

// Generation Constants
const (
	// DefaultVideoModel is the vendor video generation model
	DefaultVideoModel = "veo-2.0-generate-001"

	// DefaultTextModel is the model used for script-to-scene splitting
	DefaultTextModel = "gemini-2.0-flash"

	// DefaultPollInterval is the fixed delay between operation polls
	DefaultPollInterval = 10 * time.Second

	// DefaultMaxScenes caps the number of scenes a director job may produce
	DefaultMaxScenes = 8

	// MaxDurationSeconds is the longest clip the vendor API accepts
	MaxDurationSeconds = 8
)

// Server Constants
const (
	// DefaultPort is the HTTP API port
	DefaultPort = "8080"

	// RecentJobsCount is the number of jobs returned by GET /api/jobs
	RecentJobsCount = 20

	// MaxJobLogs bounds the per-job log ring
	MaxJobLogs = 50
)

// Directory Constants
const (
	// OutputDir is the directory for finished videos
	OutputDir = "output"
)

// Kafka Constants
const (
	// KafkaTopic is the default topic for generation requests
	KafkaTopic = "video-generation-requests"

	// KafkaGroupID is the default consumer group
	KafkaGroupID = "reelstudio-consumer-group"
)

// YouTube Constants
const (
	// YouTubeCategoryID for Science & Technology
	YouTubeCategoryID = "28"

	// YouTubePrivacyStatus sets video visibility
	YouTubePrivacyStatus = "unlisted"
)
