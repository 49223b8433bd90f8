package services

import (
	"agrodirect/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var ErrEmptyRecommendation = errors.New("price advisor returned an empty response")

var priceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"minPrice":         {Type: genai.TypeNumber},
		"maxPrice":         {Type: genai.TypeNumber},
		"recommendedPrice": {Type: genai.TypeNumber},
		"reason":           {Type: genai.TypeString},
	},
	Required: []string{"minPrice", "maxPrice", "recommendedPrice", "reason"},
}

// GeminiAdvisor asks a Gemini model for a Naira price range.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
}

func NewGeminiAdvisor(ctx context.Context, apiKey, model string) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiAdvisor{client: client, model: model}, nil
}

func pricePrompt(q models.PriceQuery) string {
	return fmt.Sprintf(
		"Recommend a competitive market price for %s (%s) in %s, Nigeria. "+
			"Provide a minimum and maximum recommended price in Nigerian Naira (NGN), "+
			"and a short reason based on current seasonal trends.",
		q.ProductName, q.Category, q.Location,
	)
}

func (a *GeminiAdvisor) Recommend(ctx context.Context, q models.PriceQuery) (*models.PriceRecommendation, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(pricePrompt(q)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   priceSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	return parseRecommendation(resp.Text())
}

type geminiPrice struct {
	MinPrice         *float64 `json:"minPrice"`
	MaxPrice         *float64 `json:"maxPrice"`
	RecommendedPrice *float64 `json:"recommendedPrice"`
	Reason           string   `json:"reason"`
}

func parseRecommendation(text string) (*models.PriceRecommendation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyRecommendation
	}

	var raw geminiPrice
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode price recommendation: %w", err)
	}
	if raw.MinPrice == nil || raw.MaxPrice == nil || raw.RecommendedPrice == nil {
		return nil, fmt.Errorf("price recommendation is missing fields")
	}

	return &models.PriceRecommendation{
		MinPrice:         *raw.MinPrice,
		MaxPrice:         *raw.MaxPrice,
		RecommendedPrice: *raw.RecommendedPrice,
		Reason:           strings.TrimSpace(raw.Reason),
	}, nil
}
