package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// ErrPaymentRequired is returned when a refund is created without a payment.
var ErrPaymentRequired = errors.New("payment ID is required (--payment)")

// NewRefundsCommand creates the refunds command group
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refunds",
		Short: "Manage refunds",
		Long:  "Create, retrieve, and update refunds against paid payments",
	}

	cmd.AddCommand(newRefundsCreateCommand())
	cmd.AddCommand(newRefundsGetCommand())
	cmd.AddCommand(newRefundsUpdateCommand())

	return cmd
}

func outputRefund(refund *payrex.Refund) error {
	if rendered, err := renderStructured(refund); rendered {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", refund.ID)
	_ = table.Append("Status", string(refund.Status))
	_ = table.Append("Amount", formatAmount(refund.Amount, refund.Currency))
	_ = table.Append("Payment", refund.PaymentID)
	_ = table.Append("Reason", string(refund.Reason))
	_ = table.Append("Remarks", refund.Remarks)
	_ = table.Append("Metadata", formatMetadata(refund.Metadata))
	_ = table.Append("Created", formatTimestamp(refund.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newRefundsCreateCommand() *cobra.Command {
	var (
		paymentID     string
		amount        int64
		currency      string
		reason        string
		remarks       string
		metadataPairs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a refund",
		RunE: func(cmd *cobra.Command, args []string) error {
			if paymentID == "" {
				return ErrPaymentRequired
			}

			if amount == 0 {
				return ErrAmountRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := payrex.NewRefundCreate(paymentID, amount,
				payrex.Currency(currency), payrex.RefundReason(reason))

			if remarks != "" {
				request = request.WithRemarks(remarks)
			}

			metadata, err := parseMetadataFlags(metadataPairs)
			if err != nil {
				return err
			}

			if metadata != nil {
				request = request.WithMetadata(metadata)
			}

			refund, err := client.Refunds().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create refund: %w", err)
			}

			return outputRefund(refund)
		},
	}

	cmd.Flags().StringVar(&paymentID, "payment", "", "payment ID to refund")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in centavos")
	cmd.Flags().StringVar(&currency, "currency", "PHP", "three-letter currency code")
	cmd.Flags().StringVar(&reason, "reason", "requested_by_customer", "refund reason")
	cmd.Flags().StringVar(&remarks, "remarks", "", "internal remarks")
	cmd.Flags().StringArrayVar(&metadataPairs, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newRefundsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get refund: %w", err)
			}

			return outputRefund(refund)
		},
	}
}

func newRefundsUpdateCommand() *cobra.Command {
	var metadataPairs []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update refund metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			metadata, err := parseMetadataFlags(metadataPairs)
			if err != nil {
				return err
			}

			request := payrex.NewRefundUpdate().WithMetadata(metadata)

			refund, err := client.Refunds().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update refund: %w", err)
			}

			return outputRefund(refund)
		},
	}

	cmd.Flags().StringArrayVar(&metadataPairs, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}
