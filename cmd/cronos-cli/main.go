// cronos-cli is a small demo client for the developer-platform SDK: balance
// lookups, CronosId resolution, and exchange tickers from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crypto-com/developer-platform-client-go/pkg/client"
	"github.com/crypto-com/developer-platform-client-go/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	apiKey      string
	networkName string
	configFile  string
)

var rootCmd = &cobra.Command{
	Use:   "cronos-cli",
	Short: "Query the Cronos developer platform from the command line",
	Long: `cronos-cli wraps the developer-platform SDK for quick lookups.

Examples:
  cronos-cli balance 0x1234...              # Native balance of an address
  cronos-cli resolve alice.cro              # CronosId forward resolution
  cronos-cli ticker CRO_USD                 # One instrument's ticker
  cronos-cli create-wallet                  # Generate a wallet locally`,
	SilenceUsage: true,
}

// newSDK builds the SDK from --config when given, otherwise from flags and
// the CRONOS_API_KEY environment variable.
func newSDK() (*client.Client, error) {
	if configFile != "" {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		return client.New(cfg)
	}

	key := apiKey
	if key == "" {
		key = os.Getenv("CRONOS_API_KEY")
	}

	cfg := &config.Config{
		APIKey:  key,
		Network: networkByName(networkName),
	}
	return client.New(cfg)
}

func networkByName(name string) config.Network {
	switch name {
	case "cronos-evm-testnet":
		return config.CronosEvmTestnet
	case "cronos-zkevm":
		return config.CronosZkEvm
	case "cronos-zkevm-testnet":
		return config.CronosZkEvmTestnet
	default:
		return config.CronosEvm
	}
}

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the native balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		resp, err := sdk.Wallet().Balance(context.Background(), args[0])
		if err != nil {
			return err
		}
		color.Green("balance of %s:", args[0])
		fmt.Println(string(resp.Data))
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <name.cro>",
	Short: "Resolve a CronosId name to its address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		resp, err := sdk.CronosId().ForwardResolve(context.Background(), args[0])
		if err != nil {
			return err
		}
		color.Green("%s resolves to:", args[0])
		fmt.Println(string(resp.Data))
		return nil
	},
}

var tickerCmd = &cobra.Command{
	Use:   "ticker [instrument]",
	Short: "Show exchange tickers, optionally for one instrument",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}

		ctx := context.Background()
		if len(args) == 1 {
			resp, err := sdk.Exchange().TickerByInstrument(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(string(resp.Data))
			return nil
		}

		resp, err := sdk.Exchange().AllTickers(ctx)
		if err != nil {
			return err
		}
		fmt.Println(string(resp.Data))
		return nil
	},
}

var createWalletCmd = &cobra.Command{
	Use:   "create-wallet",
	Short: "Generate a new wallet locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		w, err := sdk.Wallet().Create()
		if err != nil {
			return err
		}
		color.Green("address:  %s", w.Address)
		color.Yellow("mnemonic: %s", w.Mnemonic)
		color.Red("keep the mnemonic and private key offline")
		fmt.Printf("private key: %s\n", w.PrivateKey)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "platform API key (default $CRONOS_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&networkName, "network", "cronos-evm", "target network: cronos-evm, cronos-evm-testnet, cronos-zkevm, cronos-zkevm-testnet")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(balanceCmd, resolveCmd, tickerCmd, createWalletCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
