package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/feedback-widget/internal/config"
)

func setupEndpoint(t *testing.T, status int) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	t.Setenv(config.EnvEnvironment, "production")
	t.Setenv(config.EnvFormURL, server.URL)
	t.Setenv(config.EnvSentryDSN, "")
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		args     []string
		wantCode int
		wantOut  string
	}{
		{"delivered", http.StatusOK, []string{"-rating", "2", "-comment", "cold food"}, 0, "Delivered"},
		{"endpoint error is not fatal", http.StatusBadGateway, []string{"-rating", "2", "-comment", "cold food"}, 0, "Delivery failed"},
		{"strict endpoint error", http.StatusBadGateway, []string{"-strict", "-rating", "2", "-comment", "cold food"}, 1, "Delivery failed"},
		{"blank comment", http.StatusOK, []string{"-rating", "3"}, 0, "Delivery failed"},
		{"rating out of range", http.StatusOK, []string{"-strict", "-rating", "7", "-comment", "x"}, 1, "Delivery failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEndpoint(t, tt.status)

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, stderr.String())
			assert.Contains(t, stdout.String(), tt.wantOut)
		})
	}
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-rating", "many"}, &stdout, &stderr))
	assert.NotEmpty(t, stderr.String())
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv(config.EnvSubmitTimeout, "soon")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"-rating", "1", "-comment", "x"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Failed to load config")
}
