// Package transaction exposes transaction lookups and fee queries.
//
// The lookup endpoints (by address, by hash, status) authenticate with the
// apiKey query parameter; the rest use the x-api-key header. The remote
// service inherited this split and each endpoint keeps its own contract.
package transaction

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
)

// DefaultLimit is the page size sent when the caller does not choose one.
const DefaultLimit = 20

var (
	byAddressEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "transactions-by-address",
		Method:    http.MethodGet,
		Path:      "/transaction/address",
		Auth:      api.AuthQuery,
	}
	byHashEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "transaction-by-hash",
		Method:    http.MethodGet,
		Path:      "/transaction/tx-hash",
		Auth:      api.AuthQuery,
	}
	statusEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "transaction-status",
		Method:    http.MethodGet,
		Path:      "/transaction/status",
		Auth:      api.AuthQuery,
	}
	countEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "transaction-count",
		Method:    http.MethodGet,
		Path:      "/transaction/tx-count",
		Auth:      api.AuthHeader,
	}
	gasPriceEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "gas-price",
		Method:    http.MethodGet,
		Path:      "/transaction/gas-price",
		Auth:      api.AuthHeader,
	}
	feeDataEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "fee-data",
		Method:    http.MethodGet,
		Path:      "/transaction/fee-data",
		Auth:      api.AuthHeader,
	}
	estimateGasEndpoint = api.Endpoint{
		Module:    "transaction",
		Operation: "estimate-gas",
		Method:    http.MethodPost,
		Path:      "/transaction/estimate-gas",
		Auth:      api.AuthHeader,
	}
)

// Client is the transaction facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// ListOptions narrows a transaction listing. Session is the opaque
// pagination token from a previous page and is omitted when empty. Limit is
// always sent, defaulting to DefaultLimit. StartBlock and EndBlock bound the
// scanned range and are omitted entirely when nil.
type ListOptions struct {
	Session    string
	Limit      int
	StartBlock *int64
	EndBlock   *int64
}

// TransactionsByAddress lists transactions of an address, newest first.
func (c *Client) TransactionsByAddress(ctx context.Context, address string, opts ListOptions) (*api.Response, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := url.Values{
		"address": {address},
		"limit":   {strconv.Itoa(limit)},
	}
	if opts.Session != "" {
		query.Set("session", opts.Session)
	}
	if opts.StartBlock != nil {
		query.Set("startBlock", strconv.FormatInt(*opts.StartBlock, 10))
	}
	if opts.EndBlock != nil {
		query.Set("endBlock", strconv.FormatInt(*opts.EndBlock, 10))
	}

	return c.api.Call(ctx, byAddressEndpoint, query, nil)
}

// TransactionByHash fetches a single transaction.
func (c *Client) TransactionByHash(ctx context.Context, txHash string) (*api.Response, error) {
	query := url.Values{"txHash": {txHash}}
	return c.api.Call(ctx, byHashEndpoint, query, nil)
}

// TransactionStatus fetches the confirmation status of a transaction.
func (c *Client) TransactionStatus(ctx context.Context, txHash string) (*api.Response, error) {
	query := url.Values{"txHash": {txHash}}
	return c.api.Call(ctx, statusEndpoint, query, nil)
}

// TransactionCount fetches the nonce of an address.
func (c *Client) TransactionCount(ctx context.Context, address string) (*api.Response, error) {
	query := url.Values{"address": {address}}
	return c.api.Call(ctx, countEndpoint, query, nil)
}

// GasPrice fetches the current gas price.
func (c *Client) GasPrice(ctx context.Context) (*api.Response, error) {
	return c.api.Call(ctx, gasPriceEndpoint, nil, nil)
}

// FeeData fetches the current fee data (base fee, priority fee).
func (c *Client) FeeData(ctx context.Context) (*api.Response, error) {
	return c.api.Call(ctx, feeDataEndpoint, nil, nil)
}

// EstimateGasRequest describes the call to estimate.
type EstimateGasRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value,omitempty"`
	Data  string `json:"data,omitempty"`
}

// EstimateGas estimates the gas needed for a call.
func (c *Client) EstimateGas(ctx context.Context, req EstimateGasRequest) (*api.Response, error) {
	return c.api.Call(ctx, estimateGasEndpoint, nil, req)
}
