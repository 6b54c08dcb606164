package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/scribehq/scribe-backend/internal/config"
	"github.com/scribehq/scribe-backend/internal/providers"
)

// Provider implements the Gemini gateway
type Provider struct {
	config config.ProviderConfig
	client *genai.Client
}

// NewProvider creates a new Gemini gateway
func NewProvider(ctx context.Context, cfg config.ProviderConfig) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Provider{
		config: cfg,
		client: client,
	}, nil
}

// Name returns the gateway name
func (p *Provider) Name() string {
	return "gemini"
}

// GenerateText runs a text-only generation
func (p *Provider) GenerateText(ctx context.Context, model, prompt string) (*providers.GenerateResult, error) {
	gm := p.client.GenerativeModel(model)

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrModelInvocation, err)
	}

	return convertResponse(resp)
}

// GenerateAudio runs a multimodal generation over the prompt and an
// uploaded audio asset
func (p *Provider) GenerateAudio(ctx context.Context, model, prompt string, audio providers.AudioHandle) (*providers.GenerateResult, error) {
	gm := p.client.GenerativeModel(model)

	resp, err := gm.GenerateContent(ctx,
		genai.Text(prompt),
		genai.FileData{MIMEType: audio.MIMEType, URI: audio.URI},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrModelInvocation, err)
	}

	return convertResponse(resp)
}

// UploadAudio uploads a local audio file to the Gemini file store
func (p *Provider) UploadAudio(ctx context.Context, path string) (providers.AudioHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return providers.AudioHandle{}, fmt.Errorf("%w: %v", providers.ErrAssetUpload, err)
	}
	defer f.Close()

	mimeType := providers.AudioMIMEType(path)
	file, err := p.client.UploadFile(ctx, "", f, &genai.UploadFileOptions{MIMEType: mimeType})
	if err != nil {
		return providers.AudioHandle{}, fmt.Errorf("%w: %v", providers.ErrAssetUpload, err)
	}

	return providers.AudioHandle{
		URI:      file.URI,
		Name:     file.Name,
		MIMEType: mimeType,
	}, nil
}

// ValidateConfig validates the gateway configuration
func (p *Provider) ValidateConfig() error {
	if p.config.APIKey == "" {
		return errors.New("API key is required")
	}
	return nil
}

// Close releases the underlying client
func (p *Provider) Close() error {
	return p.client.Close()
}

// convertResponse maps the SDK response to the typed gateway result.
// Missing usage metadata becomes a zeroed Usage.
func convertResponse(resp *genai.GenerateContentResponse) (*providers.GenerateResult, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: empty response from model", providers.ErrModelInvocation)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result := &providers.GenerateResult{Text: sb.String()}
	if usage := resp.UsageMetadata; usage != nil {
		result.Usage = providers.Usage{
			InputTokens:  int(usage.PromptTokenCount),
			OutputTokens: int(usage.CandidatesTokenCount),
			TotalTokens:  int(usage.TotalTokenCount),
		}
	}
	return result, nil
}
