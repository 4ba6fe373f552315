package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/go-resty/resty/v2"
)

// Client is the typed API client the editor uses against cmd/server.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

// apiError is the server's standard error body.
type apiError struct {
	Message string `json:"message"`
}

func decode[T any](resp *resty.Response, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if resp.IsError() {
		var apiErr apiError
		if jsonErr := json.Unmarshal(resp.Body(), &apiErr); jsonErr == nil && apiErr.Message != "" {
			return zero, fmt.Errorf("%s", apiErr.Message)
		}
		return zero, fmt.Errorf("request failed: status %d", resp.StatusCode())
	}
	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func (c *Client) ListPrompts(ctx context.Context, category string) ([]model.Prompt, error) {
	req := c.http.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	return decode[[]model.Prompt](req.Get("/api/prompts"))
}

func (c *Client) GetPrompt(ctx context.Context, id int) (*model.Prompt, error) {
	return decode[*model.Prompt](c.http.R().SetContext(ctx).Get(fmt.Sprintf("/api/prompts/%d", id)))
}

func (c *Client) ListEssays(ctx context.Context) ([]model.Essay, error) {
	return decode[[]model.Essay](c.http.R().SetContext(ctx).Get("/api/essays"))
}

func (c *Client) GetEssay(ctx context.Context, id int) (*model.Essay, error) {
	return decode[*model.Essay](c.http.R().SetContext(ctx).Get(fmt.Sprintf("/api/essays/%d", id)))
}

func (c *Client) CreateEssay(ctx context.Context, insert model.InsertEssay) (*model.Essay, error) {
	return decode[*model.Essay](c.http.R().SetContext(ctx).SetBody(insert).Post("/api/essays"))
}

func (c *Client) UpdateEssay(ctx context.Context, id int, updates model.EssayUpdate) (*model.Essay, error) {
	return decode[*model.Essay](c.http.R().SetContext(ctx).SetBody(updates).Patch(fmt.Sprintf("/api/essays/%d", id)))
}

func (c *Client) DeleteEssay(ctx context.Context, id int) error {
	_, err := decode[map[string]string](c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/api/essays/%d", id)))
	return err
}

// ValidateEssay submits the essay for AI scoring. The server rejects empty
// and under-length essays before calling the model.
func (c *Client) ValidateEssay(ctx context.Context, content, prompt string) (*model.Evaluation, error) {
	body := map[string]string{"content": content, "prompt": prompt}
	return decode[*model.Evaluation](c.http.R().SetContext(ctx).SetBody(body).Post("/api/validate-essay"))
}
