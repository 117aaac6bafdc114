package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// ErrWebhookURLRequired is returned when a webhook is created without a URL.
var ErrWebhookURLRequired = errors.New("webhook URL is required (--url)")

// NewWebhooksCommand creates the webhooks command group
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhook endpoints",
		Long:  "Create, retrieve, update, list, delete, enable, and disable webhook endpoints",
	}

	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksGetCommand())
	cmd.AddCommand(newWebhooksUpdateCommand())
	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())
	cmd.AddCommand(newWebhooksEnableCommand())
	cmd.AddCommand(newWebhooksDisableCommand())

	return cmd
}

func outputWebhook(webhook *payrex.Webhook) error {
	if rendered, err := renderStructured(webhook); rendered {
		return err
	}

	events := make([]string, 0, len(webhook.Events))
	for _, event := range webhook.Events {
		events = append(events, string(event))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", webhook.ID)
	_ = table.Append("URL", webhook.URL)
	_ = table.Append("Status", string(webhook.Status))
	_ = table.Append("Events", strings.Join(events, ", "))
	_ = table.Append("Description", webhook.Description)

	// Only present on creation; print it because it cannot be fetched again.
	if webhook.SecretKey != "" {
		_ = table.Append("Secret Key", webhook.SecretKey)
	}

	_ = table.Append("Created", formatTimestamp(webhook.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		url         string
		events      []string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return ErrWebhookURLRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			eventTypes := make([]payrex.EventType, 0, len(events))
			for _, event := range events {
				eventTypes = append(eventTypes, payrex.EventType(event))
			}

			request := payrex.NewWebhookCreate(url, eventTypes...)

			if description != "" {
				request = request.WithDescription(description)
			}

			webhook, err := client.Webhooks().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			return outputWebhook(webhook)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "destination URL for event deliveries")
	cmd.Flags().StringSliceVar(&events, "event", nil, "event types to deliver (repeatable)")
	cmd.Flags().StringVar(&description, "description", "", "webhook description")

	return cmd
}

func newWebhooksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a webhook endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get webhook: %w", err)
			}

			return outputWebhook(webhook)
		},
	}
}

func newWebhooksUpdateCommand() *cobra.Command {
	var (
		url         string
		events      []string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a webhook endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := payrex.NewWebhookUpdate()

			if url != "" {
				request = request.WithURL(url)
			}

			if len(events) > 0 {
				eventTypes := make([]payrex.EventType, 0, len(events))
				for _, event := range events {
					eventTypes = append(eventTypes, payrex.EventType(event))
				}

				request = request.WithEvents(eventTypes...)
			}

			if description != "" {
				request = request.WithDescription(description)
			}

			webhook, err := client.Webhooks().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update webhook: %w", err)
			}

			return outputWebhook(webhook)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "destination URL for event deliveries")
	cmd.Flags().StringSliceVar(&events, "event", nil, "event types to deliver (repeatable)")
	cmd.Flags().StringVar(&description, "description", "", "webhook description")

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	var (
		url   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhook endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &payrex.WebhookListParams{URL: url}
			params.Limit = limit

			webhooks, err := client.Webhooks().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			if rendered, err := renderStructured(webhooks.Data); rendered {
				return err
			}

			if len(webhooks.Data) == 0 {
				fmt.Println("No webhooks found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "URL", "Status", "Events", "Created")

			for _, webhook := range webhooks.Data {
				_ = table.Append(webhook.ID, webhook.URL, string(webhook.Status),
					fmt.Sprintf("%d", len(webhook.Events)), formatTimestamp(webhook.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "filter by destination URL")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a webhook endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Webhooks().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			fmt.Printf("Deleted webhook %s\n", args[0])

			return nil
		},
	}
}

func newWebhooksEnableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable a webhook endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Enable(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to enable webhook: %w", err)
			}

			return outputWebhook(webhook)
		},
	}
}

func newWebhooksDisableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a webhook endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Disable(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to disable webhook: %w", err)
			}

			return outputWebhook(webhook)
		},
	}
}
