package api

import (
	"github.com/gin-gonic/gin"

	"reelstudio/prompt"
	"reelstudio/publish"
	"reelstudio/store"
	"reelstudio/studio"
)

// Publisher uploads a finished video to an external platform.
type Publisher interface {
	Publish(videoPath string, meta publish.Metadata) (string, error)
}

// Deps carries everything the HTTP surface needs. Publisher may be nil.
type Deps struct {
	Service   *studio.Service
	Store     store.JobStore
	Enhancer  prompt.Enhancer
	Publisher Publisher
	OutputDir string
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterWebRoutes(r, deps.OutputDir)
	RegisterGenerationRoutes(r, deps.Service)
	RegisterJobRoutes(r, deps.Store, deps.Publisher)
	RegisterPromptRoutes(r, deps.Enhancer)
	RegisterHealthRoutes(r)
	return r
}
