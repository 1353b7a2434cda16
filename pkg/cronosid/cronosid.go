// Package cronosid resolves human-readable .cro names through the platform
// name service. Name resolution only exists on the Cronos EVM networks, so
// every call is gated on the configured chain before any request is made.
package cronosid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/crypto-com/developer-platform-client-go/pkg/api"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
)

// Suffix is the top-level domain of every CronosId name.
const Suffix = ".cro"

var (
	forwardResolveEndpoint = api.Endpoint{
		Module:    "cronosid",
		Operation: "forward-resolve",
		Method:    http.MethodGet,
		Path:      "/cronosid/resolve",
		Auth:      api.AuthHeader,
	}
	reverseResolveEndpoint = api.Endpoint{
		Module:    "cronosid",
		Operation: "reverse-resolve",
		Method:    http.MethodGet,
		Path:      "/cronosid/reverse-resolve",
		Auth:      api.AuthHeader,
	}
)

// supportedChainIDs lists the only networks the name service exists on.
var supportedChainIDs = map[string]struct{}{
	config.CronosEvm.ChainID:        {},
	config.CronosEvmTestnet.ChainID: {},
}

// IsValidCronosId reports whether s is a well-formed CronosId name:
// case-insensitive, ends with ".cro", and has a non-empty label before the
// first ".cro" occurrence. "alice.cro" and "a.cro.cro" are valid; ".cro"
// alone is not.
func IsValidCronosId(s string) bool {
	lower := strings.ToLower(s)
	if !strings.HasSuffix(lower, Suffix) {
		return false
	}
	return len(strings.Split(lower, Suffix)[0]) > 0
}

// SupportedOn reports whether the name service exists on the given network.
func SupportedOn(network config.Network) bool {
	_, ok := supportedChainIDs[network.ChainID]
	return ok
}

// Client is the CronosId facade.
type Client struct {
	api     *api.Client
	network config.Network
}

// New creates the facade bound to the given dispatcher and network.
func New(apiClient *api.Client, network config.Network) *Client {
	return &Client{
		api:     apiClient,
		network: network,
	}
}

// ForwardResolve resolves a .cro name to its registered wallet address.
// It fails with *api.ValidationError, before any network call, when the
// configured network has no name service or the name is malformed.
func (c *Client) ForwardResolve(ctx context.Context, name string) (*api.Response, error) {
	if !SupportedOn(c.network) {
		return nil, &api.ValidationError{
			Tag: forwardResolveEndpoint.Tag(),
			Msg: fmt.Sprintf("CronosId is not supported on %s (chain %s)", c.network.Name, c.network.ChainID),
		}
	}
	if !IsValidCronosId(name) {
		return nil, &api.ValidationError{
			Tag: forwardResolveEndpoint.Tag(),
			Msg: fmt.Sprintf("%q is not a valid CronosId", name),
		}
	}

	ep := forwardResolveEndpoint
	ep.Path += "/" + url.PathEscape(name)
	return c.api.Call(ctx, ep, nil, nil)
}

// ReverseResolve looks up the .cro name registered for an address. The
// address itself is opaque to the SDK and passed through unvalidated.
func (c *Client) ReverseResolve(ctx context.Context, address string) (*api.Response, error) {
	if !SupportedOn(c.network) {
		return nil, &api.ValidationError{
			Tag: reverseResolveEndpoint.Tag(),
			Msg: fmt.Sprintf("CronosId is not supported on %s (chain %s)", c.network.Name, c.network.ChainID),
		}
	}

	ep := reverseResolveEndpoint
	ep.Path += "/" + url.PathEscape(address)
	return c.api.Call(ctx, ep, nil, nil)
}
