package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

const configDirPerm = 0o700

// storedConfig is the shape of ~/.shopify-resource/config.yml.
type storedConfig struct {
	Shop       string `yaml:"shop"`
	Token      string `yaml:"token"`
	APIVersion string `yaml:"api-version,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		shop  string
		token string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store shop credentials",
		Long:  "Verify shop credentials against the Admin API and store them in the config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if shop == "" {
				shop = viper.GetString("shop")
			}

			if shop == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Shop domain: ")
				shop, _ = reader.ReadString('\n')
				shop = strings.TrimSpace(shop)
			}

			if shop == "" {
				return ErrShopRequired
			}

			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Access token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read access token: %w", err)
				}

				token = strings.TrimSpace(string(tokenBytes))

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			creds := &shopify.Credentials{ShopDomain: shop, AccessToken: token}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Cheap request to prove the credentials work
			_, err = client.Products().Count(context.Background(), creds, nil)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			err = saveStoredConfig(storedConfig{
				Shop:       shop,
				Token:      token,
				APIVersion: viper.GetString("api-version"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged in to %s\n", creds.MyshopifyDomain())

			return nil
		},
	}

	cmd.Flags().StringVar(&shop, "shop", "", "shop domain")
	cmd.Flags().StringVar(&token, "token", "", "Admin API access token")

	return cmd
}

func saveStoredConfig(config storedConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The token is a secret, keep the file private
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
