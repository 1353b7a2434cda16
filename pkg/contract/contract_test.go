package contract

import (
	"context"
	"net/http"
	"testing"

	"github.com/crypto-com/developer-platform-client-go/internal/testutil/apistub"
	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
)

// TestContractLookups verifies path, query, and auth of both lookups.
func TestContractLookups(t *testing.T) {
	stub := apistub.New()
	t.Cleanup(stub.Close)
	stub.Respond(http.StatusOK, `{"status":"Success","data":{"abi":"[]"}}`)

	apiClient := api.NewClient(&config.Config{APIKey: "secret"}, api.WithBaseURL(stub.URL))
	c := New(apiClient)

	if _, err := c.ContractABI(context.Background(), "0xdef"); err != nil {
		t.Fatalf("ContractABI returned error: %v", err)
	}
	call := stub.LastCall()
	if call.Path != "/contract/abi" {
		t.Fatalf("unexpected path: %s", call.Path)
	}
	if got := call.Query.Get("contractAddress"); got != "0xdef" {
		t.Fatalf("contractAddress = %q", got)
	}
	if call.Header.Get("x-api-key") != "secret" {
		t.Fatal("missing x-api-key header")
	}

	if _, err := c.ContractCode(context.Background(), "0xdef"); err != nil {
		t.Fatalf("ContractCode returned error: %v", err)
	}
	if got := stub.LastCall().Path; got != "/contract/code" {
		t.Fatalf("unexpected path: %s", got)
	}
}
