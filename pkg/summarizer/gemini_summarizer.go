package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const summaryPrompt = "Briefly describe the content of the note.: %s"

type GeminiParts struct {
	Text string `json:"text"`
}

type GeminiContent struct {
	Parts []*GeminiParts `json:"parts"`
	Role  string         `json:"role"`
}

type GeminiRequest struct {
	Contents []*GeminiContent `json:"contents"`
}

type GeminiCandidate struct {
	Content *GeminiContent `json:"content"`
}

type GeminiResponse struct {
	Candidates []*GeminiCandidate `json:"candidates"`
}

type GeminiSummarizer struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiSummarizer(apiKey, model string) *GeminiSummarizer {
	return &GeminiSummarizer{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	payload := GeminiRequest{
		Contents: []*GeminiContent{
			{
				Parts: []*GeminiParts{
					{
						Text: fmt.Sprintf(summaryPrompt, content),
					},
				},
				Role: "user",
			},
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent", s.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes GeminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
