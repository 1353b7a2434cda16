package token

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/crypto-com/developer-platform-client-go/internal/testutil/apistub"
	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
)

func newTestClient(t *testing.T, provider string) (*Client, *apistub.Stub) {
	t.Helper()
	stub := apistub.New()
	t.Cleanup(stub.Close)

	apiClient := api.NewClient(&config.Config{APIKey: "secret"}, api.WithBaseURL(stub.URL))
	return New(apiClient, provider), stub
}

// TestERC20TokenBalance_DefaultBlockHeight verifies blockHeight is always
// sent, defaulting to "latest".
func TestERC20TokenBalance_DefaultBlockHeight(t *testing.T) {
	c, stub := newTestClient(t, "")

	if _, err := c.ERC20TokenBalance(context.Background(), "0xabc", "0xdef", ""); err != nil {
		t.Fatalf("ERC20TokenBalance returned error: %v", err)
	}

	call := stub.LastCall()
	if got := call.Query.Get("blockHeight"); got != "latest" {
		t.Fatalf("blockHeight = %q, want %q", got, "latest")
	}
	if got := call.Query.Get("contractAddress"); got != "0xdef" {
		t.Fatalf("contractAddress = %q", got)
	}
}

// TestERC20TokenBalance_ExplicitBlockHeight verifies a pinned height is
// passed through untouched.
func TestERC20TokenBalance_ExplicitBlockHeight(t *testing.T) {
	c, stub := newTestClient(t, "")

	if _, err := c.ERC20TokenBalance(context.Background(), "0xabc", "0xdef", "12345"); err != nil {
		t.Fatalf("ERC20TokenBalance returned error: %v", err)
	}
	if got := stub.LastCall().Query.Get("blockHeight"); got != "12345" {
		t.Fatalf("blockHeight = %q, want %q", got, "12345")
	}
}

// TestTransfer_ProviderForwarding verifies the configured provider is
// included in the payload, and omitted when unset.
func TestTransfer_ProviderForwarding(t *testing.T) {
	t.Run("with provider", func(t *testing.T) {
		c, stub := newTestClient(t, "https://my-dapp.example")

		req := TransferRequest{To: "0xabc", Amount: "1.5", ContractAddress: "0xdef"}
		if _, err := c.Transfer(context.Background(), req); err != nil {
			t.Fatalf("Transfer returned error: %v", err)
		}

		var sent map[string]string
		if err := json.Unmarshal(stub.LastCall().Body, &sent); err != nil {
			t.Fatalf("body is not JSON: %v", err)
		}
		if sent["provider"] != "https://my-dapp.example" {
			t.Fatalf("provider = %q", sent["provider"])
		}
		if sent["to"] != "0xabc" || sent["amount"] != "1.5" || sent["contractAddress"] != "0xdef" {
			t.Fatalf("unexpected payload: %v", sent)
		}
	})

	t.Run("without provider", func(t *testing.T) {
		c, stub := newTestClient(t, "")

		if _, err := c.Transfer(context.Background(), TransferRequest{To: "0xabc", Amount: "1"}); err != nil {
			t.Fatalf("Transfer returned error: %v", err)
		}

		var sent map[string]any
		if err := json.Unmarshal(stub.LastCall().Body, &sent); err != nil {
			t.Fatalf("body is not JSON: %v", err)
		}
		if _, ok := sent["provider"]; ok {
			t.Fatal("empty provider was serialized")
		}
		if _, ok := sent["contractAddress"]; ok {
			t.Fatal("empty contractAddress was serialized")
		}
	})
}

// TestWrapAndSwap verifies paths and payloads of the remaining
// transaction-producing endpoints.
func TestWrapAndSwap(t *testing.T) {
	c, stub := newTestClient(t, "https://my-dapp.example")

	if _, err := c.Wrap(context.Background(), WrapRequest{Amount: "2"}); err != nil {
		t.Fatalf("Wrap returned error: %v", err)
	}
	if got := stub.LastCall().Path; got != "/token/wrap" {
		t.Fatalf("unexpected path: %s", got)
	}

	swap := SwapRequest{FromContractAddress: "0xaaa", ToContractAddress: "0xbbb", Amount: "3"}
	if _, err := c.Swap(context.Background(), swap); err != nil {
		t.Fatalf("Swap returned error: %v", err)
	}
	call := stub.LastCall()
	if call.Path != "/token/swap" {
		t.Fatalf("unexpected path: %s", call.Path)
	}
	var sent map[string]string
	if err := json.Unmarshal(call.Body, &sent); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if sent["fromContractAddress"] != "0xaaa" || sent["toContractAddress"] != "0xbbb" {
		t.Fatalf("unexpected payload: %v", sent)
	}
}

// TestToBaseUnit covers conversion and rejection cases.
func TestToBaseUnit(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int32
		want     string
		wantErr  bool
	}{
		{name: "whole", amount: "1", decimals: 18, want: "1000000000000000000"},
		{name: "fractional", amount: "1.5", decimals: 18, want: "1500000000000000000"},
		{name: "six decimals", amount: "0.25", decimals: 6, want: "250000"},
		{name: "zero", amount: "0", decimals: 18, want: "0"},
		{name: "too precise", amount: "0.1234567", decimals: 6, wantErr: true},
		{name: "negative", amount: "-1", decimals: 18, wantErr: true},
		{name: "garbage", amount: "one", decimals: 18, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBaseUnit(tt.amount, tt.decimals)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ToBaseUnit(%q, %d) = %q, want %q", tt.amount, tt.decimals, got, tt.want)
			}
		})
	}
}

// TestFromBaseUnit covers the reverse conversion.
func TestFromBaseUnit(t *testing.T) {
	got, err := FromBaseUnit("1500000000000000000", 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.5" {
		t.Fatalf("FromBaseUnit = %q, want %q", got, "1.5")
	}

	if _, err := FromBaseUnit("not-a-number", 18); err == nil {
		t.Fatal("expected error for garbage input")
	}
}
