// Package token exposes token operations: native and ERC-20 balance reads,
// and the transaction-producing transfer/wrap/swap endpoints. The latter
// forward the configured provider URL so the platform can return a signing
// link for the caller's dApp.
package token

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

// DefaultBlockHeight is sent when the caller does not pin a block.
const DefaultBlockHeight = "latest"

var (
	nativeBalanceEndpoint = api.Endpoint{
		Module:    "token",
		Operation: "native-token-balance",
		Method:    http.MethodGet,
		Path:      "/token/native-token-balance",
		Auth:      api.AuthHeader,
	}
	erc20BalanceEndpoint = api.Endpoint{
		Module:    "token",
		Operation: "erc20-token-balance",
		Method:    http.MethodGet,
		Path:      "/token/erc20-token-balance",
		Auth:      api.AuthHeader,
	}
	transferEndpoint = api.Endpoint{
		Module:    "token",
		Operation: "transfer",
		Method:    http.MethodPost,
		Path:      "/token/transfer",
		Auth:      api.AuthHeader,
	}
	wrapEndpoint = api.Endpoint{
		Module:    "token",
		Operation: "wrap",
		Method:    http.MethodPost,
		Path:      "/token/wrap",
		Auth:      api.AuthHeader,
	}
	swapEndpoint = api.Endpoint{
		Module:    "token",
		Operation: "swap",
		Method:    http.MethodPost,
		Path:      "/token/swap",
		Auth:      api.AuthHeader,
	}
)

// Client is the token facade.
type Client struct {
	api      *api.Client
	provider string
}

// New creates the facade. provider may be empty; it is then omitted from
// transaction-producing payloads.
func New(apiClient *api.Client, provider string) *Client {
	return &Client{
		api:      apiClient,
		provider: provider,
	}
}

// NativeTokenBalance fetches the native token balance of an address.
func (c *Client) NativeTokenBalance(ctx context.Context, address string) (*api.Response, error) {
	query := url.Values{"address": {address}}
	return c.api.Call(ctx, nativeBalanceEndpoint, query, nil)
}

// ERC20TokenBalance fetches an ERC-20 balance of an address at a block
// height. An empty blockHeight means "latest"; the parameter is always sent.
func (c *Client) ERC20TokenBalance(ctx context.Context, address, contractAddress, blockHeight string) (*api.Response, error) {
	if blockHeight == "" {
		blockHeight = DefaultBlockHeight
	}
	query := url.Values{
		"address":         {address},
		"contractAddress": {contractAddress},
		"blockHeight":     {blockHeight},
	}
	return c.api.Call(ctx, erc20BalanceEndpoint, query, nil)
}

// TransferRequest describes a token transfer. A zero ContractAddress means
// the native token.
type TransferRequest struct {
	To              string `json:"to"`
	Amount          string `json:"amount"`
	ContractAddress string `json:"contractAddress,omitempty"`
}

// transferPayload is TransferRequest plus the configured provider.
type transferPayload struct {
	TransferRequest
	Provider string `json:"provider,omitempty"`
}

// Transfer creates a transfer through the platform. The response carries a
// signing link rather than a sent transaction; nothing is signed locally.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*api.Response, error) {
	payload := transferPayload{TransferRequest: req, Provider: c.provider}
	return c.api.Call(ctx, transferEndpoint, nil, payload)
}

// WrapRequest describes wrapping native tokens into their wrapped form.
type WrapRequest struct {
	Amount string `json:"amount"`
}

type wrapPayload struct {
	WrapRequest
	Provider string `json:"provider,omitempty"`
}

// Wrap creates a wrap transaction through the platform.
func (c *Client) Wrap(ctx context.Context, req WrapRequest) (*api.Response, error) {
	payload := wrapPayload{WrapRequest: req, Provider: c.provider}
	return c.api.Call(ctx, wrapEndpoint, nil, payload)
}

// SwapRequest describes a token swap between two contracts.
type SwapRequest struct {
	FromContractAddress string `json:"fromContractAddress"`
	ToContractAddress   string `json:"toContractAddress"`
	Amount              string `json:"amount"`
}

type swapPayload struct {
	SwapRequest
	Provider string `json:"provider,omitempty"`
}

// Swap creates a swap transaction through the platform.
func (c *Client) Swap(ctx context.Context, req SwapRequest) (*api.Response, error) {
	payload := swapPayload{SwapRequest: req, Provider: c.provider}
	return c.api.Call(ctx, swapEndpoint, nil, payload)
}
