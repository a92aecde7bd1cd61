// Package rosette is a client for the Rosette API document endpoints,
// requesting results in the Annotated Data Model output format.
package rosette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rosette-api-community/document-summarization/internal/adm"
	"github.com/rosette-api-community/document-summarization/internal/config"
	"github.com/rosette-api-community/document-summarization/internal/utils"
)

type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	logger     *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.Rosette.URL == "" || cfg.Rosette.Key == "" {
		return nil, fmt.Errorf("ROSETTE_API_URL and ROSETTE_API_KEY are required")
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Rosette.URL, "/"),
		key:     cfg.Rosette.Key,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

// Entities annotates the document for named entities, sentences, and tokens.
func (c *Client) Entities(params DocumentParameters, reqID string) (*adm.Document, error) {
	return c.annotate("entities", params, reqID)
}

// Lemmas annotates the document for tokens with lemma and part-of-speech
// analyses.
func (c *Client) Lemmas(params DocumentParameters, reqID string) (*adm.Document, error) {
	return c.annotate("morphology/lemmas", params, reqID)
}

// GetADM fetches a single ADM combining entity annotations with lemma and
// part-of-speech analyses. The entities and morphology endpoints are called
// separately and the morphology token attribute overlays the entity result's.
func (c *Client) GetADM(content, language string, uri bool, reqID string) (*adm.Document, error) {
	params := DocumentParameters{Language: language}
	if uri {
		params.ContentURI = utils.EscapeURI(content)
	} else {
		params.Content = content
	}

	document, err := c.Entities(params, reqID)
	if err != nil {
		return nil, fmt.Errorf("entities request failed: %w", err)
	}

	lemmas, err := c.Lemmas(params, reqID)
	if err != nil {
		return nil, fmt.Errorf("morphology request failed: %w", err)
	}

	document.Attributes.Tokens = lemmas.Attributes.Tokens

	return document, nil
}

func (c *Client) annotate(endpoint string, params DocumentParameters, reqID string) (*adm.Document, error) {
	url := fmt.Sprintf("%s/%s?output=rosette", c.baseURL, endpoint)

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parameters: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug(&reqID, "Requesting %s annotation from %s", endpoint, c.baseURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch annotation: %w", err)
	}
	defer resp.Body.Close()

	if c.logger.RawBodyLog {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		c.logger.Debug(&reqID, "Raw response body: %s", string(bodyBytes))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleAPIError(resp)
	}

	var document adm.Document
	if err := json.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &document, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("X-RosetteAPI-Key", c.key)
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
