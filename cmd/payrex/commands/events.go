package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect events",
		Long:  "Retrieve and list the events recorded for your account",
	}

	cmd.AddCommand(newEventsGetCommand())
	cmd.AddCommand(newEventsListCommand())

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			if rendered, err := renderStructured(event); rendered {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", event.ID)
			_ = table.Append("Type", string(event.Type))
			_ = table.Append("Pending Webhooks", fmt.Sprintf("%d", event.PendingWebhooks))
			_ = table.Append("Data", string(event.Data))
			_ = table.Append("Created", formatTimestamp(event.CreatedAt))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newEventsListCommand() *cobra.Command {
	var (
		eventType string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &payrex.EventListParams{Type: payrex.EventType(eventType)}
			params.Limit = limit

			events, err := client.Events().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			if rendered, err := renderStructured(events.Data); rendered {
				return err
			}

			if len(events.Data) == 0 {
				fmt.Println("No events found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Pending", "Created")

			for _, event := range events.Data {
				_ = table.Append(event.ID, string(event.Type),
					fmt.Sprintf("%d", event.PendingWebhooks), formatTimestamp(event.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&eventType, "type", "", "filter by event type")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}
