// Package client is a Go client for the PDF Rule Checker API. Transport
// and HTTP failures are collapsed into single user-facing messages; the
// underlying technical detail is discarded.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rulecheck/pdf-rule-checker/internal/models"
)

const defaultTimeout = 60 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Check uploads a PDF and a rule list and returns one result per rule.
func (c *Client) Check(ctx context.Context, filename string, pdfData io.Reader, rules []string) ([]models.EvaluationResult, error) {
	if pdfData == nil {
		return nil, errors.New("No PDF file provided")
	}
	if len(rules) == 0 {
		return nil, errors.New("No rules provided")
	}

	body, contentType, err := buildMultipartBody(filename, pdfData, rules)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("No response from server. Please check your connection.")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, payload)
	}

	var decoded models.CheckResponse
	if err := json.Unmarshal(payload, &decoded); err != nil || decoded.Results == nil {
		return nil, errors.New("Invalid response format from server")
	}

	return decoded.Results, nil
}

func buildMultipartBody(filename string, pdfData io.Reader, rules []string) (*bytes.Buffer, string, error) {
	encodedRules, err := json.Marshal(rules)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("pdf", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, pdfData); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("rules", string(encodedRules)); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

// statusError maps HTTP failure statuses to fixed user-readable messages.
// Other statuses fall back to the server-supplied error field when present.
func statusError(code int, payload []byte) error {
	switch code {
	case http.StatusRequestEntityTooLarge:
		return errors.New("File is too large. Please upload a smaller file.")
	case http.StatusBadRequest:
		return errors.New("Invalid request. Please check your input and try again.")
	case http.StatusInternalServerError:
		return errors.New("Server error. Please try again later.")
	}

	var server models.ErrorResponse
	if err := json.Unmarshal(payload, &server); err == nil && server.Error != "" {
		return errors.New(server.Error)
	}

	return fmt.Errorf("request failed with status %d", code)
}

func transportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return errors.New("Request timed out. Please try again.")
		}
		return errors.New("No response from server. Please check your connection.")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("Request timed out. Please try again.")
	}
	return err
}
