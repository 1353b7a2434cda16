package cronosid

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/crypto-com/developer-platform-client-go/internal/testutil/apistub"
	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
)

// TestIsValidCronosId exercises the name grammar, including the
// first-occurrence split and case insensitivity.
func TestIsValidCronosId(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple name", input: "alice.cro", want: true},
		{name: "uppercase", input: "ALICE.CRO", want: true},
		{name: "mixed case suffix", input: "alice.Cro", want: true},
		{name: "no suffix", input: "alice", want: false},
		{name: "suffix only", input: ".cro", want: false},
		{name: "empty string", input: "", want: false},
		{name: "repeated suffix", input: "a.cro.cro", want: true},
		{name: "suffix twice no label", input: ".cro.cro", want: false},
		{name: "suffix in the middle only", input: "a.crob", want: false},
		{name: "dot before suffix", input: "sub.name.cro", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCronosId(tt.input); got != tt.want {
				t.Fatalf("IsValidCronosId(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSupportedOn verifies the exact two-network allow-list.
func TestSupportedOn(t *testing.T) {
	tests := []struct {
		network config.Network
		want    bool
	}{
		{network: config.CronosEvm, want: true},
		{network: config.CronosEvmTestnet, want: true},
		{network: config.CronosZkEvm, want: false},
		{network: config.CronosZkEvmTestnet, want: false},
		{network: config.Network{ChainID: "1", Name: "ethereum"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.network.Name, func(t *testing.T) {
			if got := SupportedOn(tt.network); got != tt.want {
				t.Fatalf("SupportedOn(%s) = %v, want %v", tt.network.ChainID, got, tt.want)
			}
		})
	}
}

func newTestClient(t *testing.T, network config.Network) (*Client, *apistub.Stub) {
	t.Helper()
	stub := apistub.New()
	t.Cleanup(stub.Close)

	apiClient := api.NewClient(&config.Config{APIKey: "secret"}, api.WithBaseURL(stub.URL))
	return New(apiClient, network), stub
}

// TestForwardResolve_ChainGate verifies unsupported networks are rejected
// before any request is issued.
func TestForwardResolve_ChainGate(t *testing.T) {
	c, stub := newTestClient(t, config.CronosZkEvm)

	_, err := c.ForwardResolve(context.Background(), "alice.cro")
	var validationErr *api.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *api.ValidationError, got %v", err)
	}
	if stub.CallCount() != 0 {
		t.Fatalf("expected no requests, got %d", stub.CallCount())
	}
}

// TestForwardResolve_InvalidName verifies malformed names are rejected
// locally on a supported network.
func TestForwardResolve_InvalidName(t *testing.T) {
	c, stub := newTestClient(t, config.CronosEvm)

	_, err := c.ForwardResolve(context.Background(), "alice")
	var validationErr *api.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *api.ValidationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "[cronosid/forward-resolve]") {
		t.Fatalf("error lacks operation tag: %v", err)
	}
	if stub.CallCount() != 0 {
		t.Fatalf("expected no requests, got %d", stub.CallCount())
	}
}

// TestForwardResolve_Success verifies the request path and auth placement.
func TestForwardResolve_Success(t *testing.T) {
	c, stub := newTestClient(t, config.CronosEvm)
	stub.Respond(http.StatusOK, `{"status":"Success","data":{"address":"0xabc"}}`)

	resp, err := c.ForwardResolve(context.Background(), "alice.cro")
	if err != nil {
		t.Fatalf("ForwardResolve returned error: %v", err)
	}
	if string(resp.Data) != `{"address":"0xabc"}` {
		t.Fatalf("unexpected data: %s", resp.Data)
	}

	call := stub.LastCall()
	if call.Path != "/cronosid/resolve/alice.cro" {
		t.Fatalf("unexpected path: %s", call.Path)
	}
	if call.Header.Get("x-api-key") != "secret" {
		t.Fatal("missing x-api-key header")
	}
}

// TestReverseResolve verifies gating plus opaque address pass-through.
func TestReverseResolve(t *testing.T) {
	t.Run("gated", func(t *testing.T) {
		c, stub := newTestClient(t, config.CronosZkEvmTestnet)
		_, err := c.ReverseResolve(context.Background(), "0xabc")
		var validationErr *api.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected *api.ValidationError, got %v", err)
		}
		if stub.CallCount() != 0 {
			t.Fatalf("expected no requests, got %d", stub.CallCount())
		}
	})

	t.Run("no address validation", func(t *testing.T) {
		c, stub := newTestClient(t, config.CronosEvmTestnet)
		if _, err := c.ReverseResolve(context.Background(), "definitely-not-an-address"); err != nil {
			t.Fatalf("ReverseResolve returned error: %v", err)
		}
		if got := stub.LastCall().Path; got != "/cronosid/reverse-resolve/definitely-not-an-address" {
			t.Fatalf("unexpected path: %s", got)
		}
	})
}
