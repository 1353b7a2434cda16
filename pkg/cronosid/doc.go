// Package cronosid provides CronosId name resolution: forward (name to
// address) and reverse (address to name).
//
// # Name Grammar
//
// A CronosId name is case-insensitive, ends with ".cro", and has a
// non-empty label before the first ".cro" occurrence:
//
//	cronosid.IsValidCronosId("alice.cro")  // true
//	cronosid.IsValidCronosId("ALICE.CRO")  // true
//	cronosid.IsValidCronosId(".cro")       // false
//	cronosid.IsValidCronosId("a.cro.cro")  // true
//
// # Chain Gating
//
// The name service is deployed on exactly two networks: Cronos EVM mainnet
// (chain 25) and Cronos EVM testnet (chain 338). On any other configured
// network, ForwardResolve and ReverseResolve fail with *api.ValidationError
// before issuing a request:
//
//	cronosid.SupportedOn(config.CronosEvm)   // true
//	cronosid.SupportedOn(config.CronosZkEvm) // false
//
// # Resolution
//
//	resp, err := sdk.CronosId().ForwardResolve(ctx, "alice.cro")
//	resp, err := sdk.CronosId().ReverseResolve(ctx, "0x...")
//
// ReverseResolve performs no local validation of the address; it is passed
// through to the platform as-is.
package cronosid
