package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// NewPaymentsCommand creates the payments command group
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Inspect payments",
		Long:  "Retrieve, update, and list completed payment attempts",
	}

	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsUpdateCommand())
	cmd.AddCommand(newPaymentsListCommand())

	return cmd
}

func outputPayment(payment *payrex.Payment) error {
	if rendered, err := renderStructured(payment); rendered {
		return err
	}

	method := string(payment.PaymentMethod.Type)
	if payment.PaymentMethod.Card != nil {
		method = fmt.Sprintf("%s (%s **%s)", method,
			payment.PaymentMethod.Card.Brand, payment.PaymentMethod.Card.Last4)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", payment.ID)
	_ = table.Append("Status", string(payment.Status))
	_ = table.Append("Amount", formatAmount(payment.Amount, payment.Currency))
	_ = table.Append("Fee", formatAmount(payment.Fee, payment.Currency))
	_ = table.Append("Net", formatAmount(payment.NetAmount, payment.Currency))
	_ = table.Append("Refunded", formatAmount(payment.AmountRefunded, payment.Currency))
	_ = table.Append("Method", method)
	_ = table.Append("Payment Intent", payment.PaymentIntentID)
	_ = table.Append("Description", payment.Description)
	_ = table.Append("Created", formatTimestamp(payment.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			return outputPayment(payment)
		},
	}
}

func newPaymentsUpdateCommand() *cobra.Command {
	var (
		description   string
		metadataPairs []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := payrex.NewPaymentUpdate()

			if description != "" {
				request = request.WithDescription(description)
			}

			metadata, err := parseMetadataFlags(metadataPairs)
			if err != nil {
				return err
			}

			if metadata != nil {
				request = request.WithMetadata(metadata)
			}

			payment, err := client.Payments().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update payment: %w", err)
			}

			return outputPayment(payment)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "payment description")
	cmd.Flags().StringArrayVar(&metadataPairs, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		paymentIntentID string
		limit           int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &payrex.PaymentListParams{PaymentIntentID: paymentIntentID}
			params.Limit = limit

			payments, err := client.Payments().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			if rendered, err := renderStructured(payments.Data); rendered {
				return err
			}

			if len(payments.Data) == 0 {
				fmt.Println("No payments found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Status", "Amount", "Net", "Method", "Created")

			for _, payment := range payments.Data {
				_ = table.Append(payment.ID, string(payment.Status),
					formatAmount(payment.Amount, payment.Currency),
					formatAmount(payment.NetAmount, payment.Currency),
					string(payment.PaymentMethod.Type), formatTimestamp(payment.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&paymentIntentID, "payment-intent", "", "filter by payment intent ID")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}
