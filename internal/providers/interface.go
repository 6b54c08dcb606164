package providers

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// ErrModelInvocation collapses every generation failure (transport, auth,
// quota, malformed prompt) into one kind; the wrapped message is surfaced
// verbatim to the caller.
var ErrModelInvocation = errors.New("model invocation failed")

// ErrAssetUpload marks audio upload failures that happened before any
// generation was attempted.
var ErrAssetUpload = errors.New("audio upload failed")

// Gateway defines the interface for all generative-model backends.
// Calls are synchronous and single-shot; no retries happen below this line.
type Gateway interface {
	// Name returns the gateway name
	Name() string

	// GenerateText runs a text-only generation for the given prompt
	GenerateText(ctx context.Context, model, prompt string) (*GenerateResult, error)

	// GenerateAudio runs a multimodal generation over the prompt and a
	// previously uploaded audio asset
	GenerateAudio(ctx context.Context, model, prompt string, audio AudioHandle) (*GenerateResult, error)

	// UploadAudio makes a local audio file available to GenerateAudio and
	// returns an opaque handle for it
	UploadAudio(ctx context.Context, path string) (AudioHandle, error)

	// ValidateConfig validates the gateway configuration
	ValidateConfig() error
}

// GenerateResult is a completed generation with its usage metadata.
// Responses without usage metadata carry a zeroed Usage.
type GenerateResult struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// Usage represents token usage information
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// AudioHandle references an uploaded audio asset.
type AudioHandle struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	// LocalPath is kept for gateways that read the file themselves
	// instead of a remote asset store.
	LocalPath string `json:"-"`
}

// AudioMIMEType derives the MIME type from the file extension.
// Unrecognized extensions fall back to audio/mp3.
func AudioMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webm":
		return "audio/webm"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	default:
		return "audio/mp3"
	}
}
