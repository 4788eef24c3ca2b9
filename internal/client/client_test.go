package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecheck/pdf-rule-checker/internal/models"
)

func TestCheck_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("pdf")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "test.pdf", header.Filename)

		assert.Equal(t, `["A","B"]`, r.FormValue("rules"))

		_ = json.NewEncoder(w).Encode(models.CheckResponse{
			Success: true,
			Results: []models.EvaluationResult{
				{Rule: "A", Status: models.StatusPass, Reasoning: "ok", Confidence: 90},
				{Rule: "B", Status: models.StatusFail, Reasoning: "missing", Confidence: 70},
			},
		})
	}))
	defer server.Close()

	results, err := New(server.URL).Check(context.Background(), "test.pdf", strings.NewReader("%PDF"), []string{"A", "B"})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Rule)
	assert.Equal(t, models.StatusFail, results[1].Status)
}

func TestCheck_NoFile(t *testing.T) {
	_, err := New("http://localhost:3000").Check(context.Background(), "x.pdf", nil, []string{"A"})
	assert.Error(t, err)
}

func TestCheck_NoRules(t *testing.T) {
	_, err := New("http://localhost:3000").Check(context.Background(), "x.pdf", strings.NewReader("%PDF"), nil)
	assert.Error(t, err)
}

func TestCheck_StatusMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"too large", http.StatusRequestEntityTooLarge, `{"success":false,"error":"Request Entity Too Large"}`, "File is too large. Please upload a smaller file."},
		{"bad request", http.StatusBadRequest, `{"success":false,"error":"No PDF file uploaded"}`, "Invalid request. Please check your input and try again."},
		{"server error", http.StatusInternalServerError, `{"success":false,"error":"boom"}`, "Server error. Please try again later."},
		{"other status with server message", http.StatusNotFound, `{"success":false,"error":"route not found"}`, "route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(server.URL).Check(context.Background(), "x.pdf", strings.NewReader("%PDF"), []string{"A"})

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestCheck_NoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := New(server.URL).Check(context.Background(), "x.pdf", strings.NewReader("%PDF"), []string{"A"})

	require.Error(t, err)
	assert.Equal(t, "No response from server. Please check your connection.", err.Error())
}

func TestCheck_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(server.URL).Check(ctx, "x.pdf", strings.NewReader("%PDF"), []string{"A"})

	require.Error(t, err)
	assert.Equal(t, "Request timed out. Please try again.", err.Error())
}

func TestCheck_InvalidResponseFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	_, err := New(server.URL).Check(context.Background(), "x.pdf", strings.NewReader("%PDF"), []string{"A"})

	require.Error(t, err)
	assert.Equal(t, "Invalid response format from server", err.Error())
}
