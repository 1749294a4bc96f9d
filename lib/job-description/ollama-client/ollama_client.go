package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	ollamamodels "jd-generator-backend/models/api/ollama"
)

type Provider interface {
	Complete(ctx context.Context, prompt string) (answer string, err error)
}

type impl struct {
	ollamaURL   string
	ollamaModel string
	httpClient  *http.Client
}

func NewClient(url, model string) Provider {
	return impl{
		ollamaURL:   url,
		ollamaModel: model,
		httpClient: &http.Client{
			// local models can take a while on a single completion
			Timeout: 120 * time.Second,
		},
	}
}

func (i impl) Complete(ctx context.Context, prompt string) (string, error) {
	request := ollamamodels.OllamaRequest{
		Model:   i.ollamaModel,
		Prompt:  prompt,
		Stream:  false,
		Options: ollamamodels.GetGenerationConfig(),
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode ollama request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.ollamaURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "failed to build ollama request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to query ollama")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read ollama response")
	}

	var ollamaResponse ollamamodels.OllamaResponse
	err = json.Unmarshal(body, &ollamaResponse)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode ollama response")
	}

	return ollamaResponse.Response, nil
}
