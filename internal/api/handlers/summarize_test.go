package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribehq/scribe-backend/internal/providers"
	"github.com/scribehq/scribe-backend/internal/services"
	"github.com/scribehq/scribe-backend/internal/summarizer"
)

type fakeGateway struct {
	textCalls int
	result    *providers.GenerateResult
	err       error
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) GenerateText(ctx context.Context, model, prompt string) (*providers.GenerateResult, error) {
	g.textCalls++
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func (g *fakeGateway) GenerateAudio(ctx context.Context, model, prompt string, audio providers.AudioHandle) (*providers.GenerateResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func (g *fakeGateway) UploadAudio(ctx context.Context, path string) (providers.AudioHandle, error) {
	return providers.AudioHandle{URI: "files/fake"}, nil
}

func (g *fakeGateway) ValidateConfig() error { return nil }

func newTestApp(gw providers.Gateway) (*fiber.App, *services.Services) {
	svc := &services.Services{
		Session: summarizer.NewSession(gw, "gemini-1.5-flash", summarizer.DefaultPricing, 0),
		Gateway: gw,
	}

	app := fiber.New()
	app.Post("/reset", ResetSession(svc))
	app.Post("/summarize", SummarizeText(svc))
	return app, svc
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestSummarizeEndpoint_Success(t *testing.T) {
	gw := &fakeGateway{result: &providers.GenerateResult{
		Text:  "Decision: ship v2.",
		Usage: providers.Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}}
	app, svc := newTestApp(gw)

	resp := postJSON(t, app, "/summarize", fiber.Map{
		"text":          "Alice: let's ship v2.",
		"meeting_title": "Planning",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Decision: ship v2.", body["summary"])

	usage, ok := body["usage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(150), usage["total_tokens"])
	assert.InDelta(t, 0.0000225, usage["estimated_cost_usd"].(float64), 1e-12)

	assert.Equal(t, "Decision: ship v2.", svc.Session.Current())
}

func TestSummarizeEndpoint_EmptyTextEchoesState(t *testing.T) {
	gw := &fakeGateway{result: &providers.GenerateResult{Text: "minutes"}}
	app, svc := newTestApp(gw)

	resp := postJSON(t, app, "/summarize", fiber.Map{"text": "first segment"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, gw.textCalls)

	resp = postJSON(t, app, "/summarize", fiber.Map{"text": "   "})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "minutes", body["summary"])
	assert.Equal(t, 1, gw.textCalls, "empty segment must not reach the gateway")
	assert.Equal(t, "minutes", svc.Session.Current())
}

func TestSummarizeEndpoint_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: fmt.Errorf("%w: quota exceeded", providers.ErrModelInvocation)}
	app, svc := newTestApp(gw)

	resp := postJSON(t, app, "/summarize", fiber.Map{"text": "segment"})

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "quota exceeded")
	assert.NotContains(t, body, "summary", "errors must not masquerade as content")
	assert.Equal(t, "", svc.Session.Current())
}

func TestResetEndpoint(t *testing.T) {
	gw := &fakeGateway{result: &providers.GenerateResult{Text: "minutes"}}
	app, svc := newTestApp(gw)

	postJSON(t, app, "/summarize", fiber.Map{"text": "segment"})
	require.Equal(t, "minutes", svc.Session.Current())

	resp := postJSON(t, app, "/reset", fiber.Map{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "", svc.Session.Current())
}
