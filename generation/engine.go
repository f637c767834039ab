package generation

import "context"

// Clip is a finished video produced by the vendor API.
type Clip struct {
	// Path of the downloaded MP4 in the output directory.
	Path string
	// URI is the vendor-side location, when the API returned one.
	URI string
	// MIMEType of the media, normally video/mp4.
	MIMEType string
}

// Engine runs one generation job against the remote service: submit,
// poll until done, download. Implementations block until the remote
// operation finishes or ctx is cancelled.
type Engine interface {
	Generate(ctx context.Context, req Request) (*Clip, error)
}
