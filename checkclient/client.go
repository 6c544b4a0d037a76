// Package checkclient talks to the prompt check endpoint over HTTP.
package checkclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/llmgate/promptcheck/models"
)

const checkPath = "/api/check"

type Client struct {
	baseUrl    string
	httpClient *http.Client
}

// NewClient returns a client for the service at baseUrl. A zero timeout
// leaves requests unbounded.
func NewClient(baseUrl string, timeout time.Duration) *Client {
	return &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Check posts content and returns the service's raw model reply. A non-200
// status comes back as an error carrying the service's error message.
func (c *Client) Check(ctx context.Context, content string) (string, error) {
	payloadBytes, err := json.Marshal(models.CheckRequest{Content: content})
	if err != nil {
		return "", fmt.Errorf("error marshalling payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl+checkPath, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer response.Body.Close()

	responseData, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		var errorResponse models.ErrorResponse
		if err := json.Unmarshal(responseData, &errorResponse); err != nil || errorResponse.Error == "" {
			return "", fmt.Errorf("check failed with status %s", response.Status)
		}
		return "", fmt.Errorf("check failed: %s", errorResponse.Error)
	}

	var checkResponse models.CheckResponse
	if err := json.Unmarshal(responseData, &checkResponse); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %w", err)
	}

	return checkResponse.Response, nil
}
