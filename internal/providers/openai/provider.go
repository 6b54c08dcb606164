package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/scribehq/scribe-backend/internal/config"
	"github.com/scribehq/scribe-backend/internal/providers"
)

// Provider implements the gateway on an OpenAI-compatible endpoint.
// Chat completions take no audio asset, so the audio path transcribes the
// file with Whisper and feeds the transcript through the same prompt.
type Provider struct {
	config config.ProviderConfig
	client *openai.Client
}

// NewProvider creates a new OpenAI gateway
func NewProvider(cfg config.ProviderConfig) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Provider{
		config: cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// Name returns the gateway name
func (p *Provider) Name() string {
	return "openai"
}

// GenerateText runs a text-only generation
func (p *Provider) GenerateText(ctx context.Context, model, prompt string) (*providers.GenerateResult, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrModelInvocation, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response from model", providers.ErrModelInvocation)
	}

	return &providers.GenerateResult{
		Text: resp.Choices[0].Message.Content,
		Usage: providers.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// GenerateAudio transcribes the referenced file and generates from the
// prompt plus the transcript
func (p *Provider) GenerateAudio(ctx context.Context, model, prompt string, audio providers.AudioHandle) (*providers.GenerateResult, error) {
	transcription, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audio.LocalPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrModelInvocation, err)
	}

	full := prompt + "\n\nTranscript of the attached audio:\n" + transcription.Text
	return p.GenerateText(ctx, model, full)
}

// UploadAudio is a local no-op; the Whisper endpoint reads the file directly
func (p *Provider) UploadAudio(ctx context.Context, path string) (providers.AudioHandle, error) {
	return providers.AudioHandle{
		Name:      path,
		MIMEType:  providers.AudioMIMEType(path),
		LocalPath: path,
	}, nil
}

// ValidateConfig validates the gateway configuration
func (p *Provider) ValidateConfig() error {
	if p.config.APIKey == "" {
		return errors.New("API key is required")
	}
	return nil
}
