package summarizer

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/scribehq/scribe-backend/internal/providers"
)

// Session accumulates an incremental meeting minute across successive text
// or audio submissions. The accumulated summary is replaced, never appended,
// and only by a successful model response; calls are serialized by a mutex
// so a failed call can never corrupt the running state.
type Session struct {
	gateway         providers.Gateway
	model           string
	pricing         Pricing
	maxContextChars int

	mu      sync.Mutex
	current string
}

// NewSession creates a summarization session bound to one gateway and model.
// maxContextChars caps the running summary embedded into incremental
// prompts; 0 means unlimited.
func NewSession(gateway providers.Gateway, model string, pricing Pricing, maxContextChars int) *Session {
	return &Session{
		gateway:         gateway,
		model:           model,
		pricing:         pricing,
		maxContextChars: maxContextChars,
	}
}

// Reset clears the accumulated summary so the next call takes the
// fresh-context branch.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
	logrus.Info("summary context reset")
}

// Current returns the accumulated summary.
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SummarizeText merges a transcript segment into the running minute.
// Empty or whitespace-only segments return the unchanged summary with
// ErrEmptyInput and make no gateway call. A gateway failure returns a nil
// result and leaves the accumulated summary untouched.
func (s *Session) SummarizeText(ctx context.Context, segment, title string, notes []string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(segment) == "" {
		return &Result{Summary: s.current}, ErrEmptyInput
	}

	prompt := composeTextPrompt(truncateContext(s.current, s.maxContextChars), title, notes, segment)

	res, err := s.gateway.GenerateText(ctx, s.model, prompt)
	if err != nil {
		return nil, err
	}

	usage := s.pricing.Report(res.Usage)
	logrus.WithFields(logrus.Fields{
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
		"cost_usd":      usage.EstimatedCostUSD,
	}).Info("text segment summarized")

	s.current = res.Text
	return &Result{Summary: s.current, Usage: &usage}, nil
}

// SummarizeAudio uploads a local audio file through the gateway and merges
// its content into the running minute. Upload and generation failures both
// leave the accumulated summary untouched.
func (s *Session) SummarizeAudio(ctx context.Context, path, title string, notes []string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, err := s.gateway.UploadAudio(ctx, path)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"uri":  handle.URI,
		"mime": handle.MIMEType,
	}).Info("audio asset uploaded")

	prompt := composeAudioPrompt(truncateContext(s.current, s.maxContextChars), title, notes)

	res, err := s.gateway.GenerateAudio(ctx, s.model, prompt, handle)
	if err != nil {
		return nil, err
	}

	usage := s.pricing.Report(res.Usage)
	logrus.WithFields(logrus.Fields{
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
		"cost_usd":      usage.EstimatedCostUSD,
	}).Info("audio segment summarized")

	s.current = res.Text
	return &Result{Summary: s.current, Usage: &usage}, nil
}
