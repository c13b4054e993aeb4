package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"hdwallet-settlement/internal/core/domain"
	"hdwallet-settlement/internal/core/ports"
	"hdwallet-settlement/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// passwordEnv lets scripts supply the wallet password without a prompt.
const passwordEnv = "SETTLE_WALLET_PASSWORD"

func walletCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Operator wallet tooling",
	}
	cmd.AddCommand(
		walletCreateCmd(configPath),
		walletExportCmd(configPath),
		walletTokenCmd(configPath),
	)
	return cmd
}

func walletCreateCmd(configPath *string) *cobra.Command {
	var (
		currency string
		network  string
		label    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new HD wallet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			w, err := a.wallets.CreateWallet(ctx, ports.CreateWalletRequest{
				Currency: currency,
				Network:  domain.Network(network),
				Label:    label,
				Password: password,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "asset code, e.g. BTC, ETH, USDT")
	cmd.Flags().StringVar(&network, "network", string(domain.NetworkMainnet), "mainnet or testnet")
	cmd.Flags().StringVar(&label, "label", "", "free-form wallet label")
	_ = cmd.MarkFlagRequired("currency")
	return cmd
}

// walletExportCmd prints the decrypted wallet material. There is no HTTP
// equivalent.
func walletExportCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <wallet-id>",
		Short: "Print a wallet's mnemonic and extended keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walletID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid wallet id %q: %w", args[0], err)
			}
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			bundle, err := a.wallets.GetWalletData(ctx, walletID, password)
			if err != nil {
				return err
			}
			defer bundle.Wipe()
			return writeJSON(cmd.OutOrStdout(), bundle)
		},
	}
}

func walletTokenCmd(configPath *string) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator token for the admin API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			token, expires, err := issueToken(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer, subject)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"token":      token,
				"subject":    subject,
				"expires_at": expires.UTC().Format(time.RFC3339),
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "operator identity recorded in audit entries")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func issueToken(secret string, expiry time.Duration, issuer, subject string) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("jwt.secret is not set")
	}
	if strings.TrimSpace(subject) == "" {
		return "", time.Time{}, errors.New("subject must not be empty")
	}
	return service.NewJWTTokenService(secret, expiry, issuer).Generate(subject)
}

// readPassword takes the password from passwordEnv, else the first line of in.
func readPassword(in io.Reader) (string, error) {
	if pw, ok := os.LookupEnv(passwordEnv); ok && pw != "" {
		return pw, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", fmt.Errorf("no password: set %s or pipe it on stdin", passwordEnv)
	}
	return pw, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
