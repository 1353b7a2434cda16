package network

import (
	"context"
	"errors"
	"testing"

	"github.com/crypto-com/developer-platform-client-go/internal/testutil/apistub"
	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
)

// TestInfo verifies the authenticated info lookup.
func TestInfo(t *testing.T) {
	stub := apistub.New()
	t.Cleanup(stub.Close)

	apiClient := api.NewClient(&config.Config{APIKey: "secret"}, api.WithBaseURL(stub.URL))
	c := New(apiClient)

	if _, err := c.Info(context.Background()); err != nil {
		t.Fatalf("Info returned error: %v", err)
	}

	call := stub.LastCall()
	if call.Path != "/network/info" {
		t.Fatalf("unexpected path: %s", call.Path)
	}
	if call.Header.Get("x-api-key") != "secret" {
		t.Fatal("missing x-api-key header")
	}
}

// TestHealthcheck_NoKeyNeeded verifies the probe works without credentials.
func TestHealthcheck_NoKeyNeeded(t *testing.T) {
	stub := apistub.New()
	t.Cleanup(stub.Close)

	apiClient := api.NewClient(&config.Config{}, api.WithBaseURL(stub.URL))
	c := New(apiClient)

	if _, err := c.Healthcheck(context.Background()); err != nil {
		t.Fatalf("Healthcheck returned error: %v", err)
	}
	if stub.LastCall().Path != "/network/healthcheck" {
		t.Fatalf("unexpected path: %s", stub.LastCall().Path)
	}

	// The authenticated sibling still refuses to run without a key.
	if _, err := c.Info(context.Background()); !errors.Is(err, config.ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}
}
