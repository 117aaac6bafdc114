package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/payrex-community/payrex-go/internal/constants"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/payrex-community/payrex-go/pkg/payrexclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify a secret API key against the PayRex API and persist it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString("api_key")

			if apiKey == "" {
				// Read the key without echoing it
				fmt.Print("Secret API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			builder := payrex.NewConfig(apiKey)
			if baseURL := viper.GetString("base_url"); baseURL != "" {
				builder = builder.WithBaseURL(baseURL)
			}

			config, err := builder.Build()
			if err != nil {
				return fmt.Errorf("building configuration: %w", err)
			}

			client, err := payrexclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the key with a cheap read
			params := &payrex.EventListParams{}
			params.Limit = 1

			ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			_, err = client.Events().List(ctx, params)
			if err != nil {
				if payrex.IsAuthentication(err) {
					return fmt.Errorf("API key was rejected: %w", err)
				}

				return fmt.Errorf("failed to connect to API: %w", err)
			}

			viper.Set("api_key", apiKey)

			if err := saveConfigStruct(loadConfig()); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in with key %s\n", maskAPIKey(apiKey))

			return nil
		},
	}

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("api_key") == "" {
				return ErrNotLoggedIn
			}

			viper.Set("api_key", "")

			if err := saveConfigStruct(loadConfig()); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
