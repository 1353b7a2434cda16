// Package wallet exposes wallet operations: creating a fresh wallet locally
// and reading native balances through the platform API.
package wallet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

var balanceEndpoint = api.Endpoint{
	Module:    "wallet",
	Operation: "balance",
	Method:    http.MethodGet,
	Path:      "/wallet/balance",
	Auth:      api.AuthHeader,
}

// Wallet is freshly generated key material. It never leaves the process:
// Create performs no network call, and no other operation reads it.
type Wallet struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
	Mnemonic   string `json:"mnemonic"`
}

// Client is the wallet facade.
type Client struct {
	api *api.Client
}

// New creates the facade bound to the given dispatcher.
func New(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// Create generates a new wallet: a 12-word BIP-39 mnemonic and the ECDSA key
// at the default Ethereum derivation path (m/44'/60'/0'/0/0).
func (c *Client) Create() (*Wallet, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return nil, fmt.Errorf("can't generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("can't generate mnemonic: %w", err)
	}

	path := append(accounts.DefaultBaseDerivationPath, 0)
	privateKey, err := deriveKey(bip39.NewSeed(mnemonic, ""), path)
	if err != nil {
		return nil, fmt.Errorf("can't derive key: %w", err)
	}

	return &Wallet{
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
		PrivateKey: fmt.Sprintf("0x%x", crypto.FromECDSA(privateKey)),
		Mnemonic:   mnemonic,
	}, nil
}

// Balance fetches the native token balance of an address.
func (c *Client) Balance(ctx context.Context, address string) (*api.Response, error) {
	query := url.Values{"address": {address}}
	return c.api.Call(ctx, balanceEndpoint, query, nil)
}
