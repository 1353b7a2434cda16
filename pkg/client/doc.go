// Package client is the entry point of the Cronos developer-platform SDK.
//
// # Construction
//
// Build a Client once at startup and share it:
//
//	cfg := &config.Config{
//		APIKey:  "YOUR_API_KEY",
//		Network: config.CronosEvm,
//	}
//
//	sdk, err := client.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// New validates the configuration (config.ErrAPIKeyRequired when the key is
// missing) and wires every facade to one shared dispatcher.
//
// # Facades
//
// Each domain is reachable through an accessor:
//
//	sdk.Wallet().Balance(ctx, address)
//	sdk.Token().Transfer(ctx, req)
//	sdk.Transaction().TransactionsByAddress(ctx, address, opts)
//	sdk.Contract().ContractABI(ctx, contractAddress)
//	sdk.Block().CurrentBlock(ctx)
//	sdk.CronosId().ForwardResolve(ctx, name)
//	sdk.Defi().AllFarms(ctx, defi.ProtocolVeno)
//	sdk.Exchange().AllTickers(ctx)
//	sdk.Network().Info(ctx)
//
// Every remote operation returns the platform's *api.Response envelope
// unmodified and makes exactly one attempt; errors follow the taxonomy in
// the api package.
//
// # Error Handling
//
//	resp, err := sdk.Wallet().Balance(ctx, address)
//	if err != nil {
//		var remoteErr *api.RemoteError
//		if errors.As(err, &remoteErr) {
//			// the platform rejected the call; remoteErr.Message explains why
//		}
//		return err
//	}
//
// # Logging
//
// The package installs a console zap logger as the global logger on import.
// Applications with their own logging should call zap.ReplaceGlobals after
// importing this package. Config.Debug switches to a development logger
// that shows per-request debug lines from the dispatcher.
package client
