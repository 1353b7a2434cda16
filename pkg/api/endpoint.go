package api

// AuthPlacement says where an endpoint expects the platform API key. The
// remote service is not uniform about this: most authenticated endpoints
// read the x-api-key header, the transaction lookup family reads an apiKey
// query parameter, and the public market-data endpoints take no key at all.
// The placement is fixed per endpoint and must not be unified.
type AuthPlacement int

const (
	// AuthNone marks a public endpoint; no API key is sent.
	AuthNone AuthPlacement = iota
	// AuthHeader sends the key as the x-api-key request header.
	AuthHeader
	// AuthQuery sends the key as the apiKey query parameter.
	AuthQuery
)

// Endpoint describes one remote operation: its identity for diagnostics,
// the HTTP method and path under the versioned API prefix, and where the
// API key goes. Facades declare these as package-level values.
type Endpoint struct {
	Module    string
	Operation string
	Method    string
	Path      string
	Auth      AuthPlacement
}

// Tag returns the operation identifier used to prefix every error and log
// line produced on behalf of this endpoint, e.g. "token/transfer".
func (e Endpoint) Tag() string {
	return e.Module + "/" + e.Operation
}
