package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// NewPaymentIntentsCommand creates the payment-intents command group
func NewPaymentIntentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payment-intents",
		Aliases: []string{"pi"},
		Short:   "Manage payment intents",
		Long:    "Create, retrieve, cancel, and capture payment intents",
	}

	cmd.AddCommand(newPaymentIntentsCreateCommand())
	cmd.AddCommand(newPaymentIntentsGetCommand())
	cmd.AddCommand(newPaymentIntentsCancelCommand())
	cmd.AddCommand(newPaymentIntentsCaptureCommand())

	return cmd
}

func outputPaymentIntent(intent *payrex.PaymentIntent) error {
	if rendered, err := renderStructured(intent); rendered {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", intent.ID)
	_ = table.Append("Status", string(intent.Status))
	_ = table.Append("Amount", formatAmount(intent.Amount, intent.Currency))
	_ = table.Append("Received", formatAmount(intent.AmountReceived, intent.Currency))
	_ = table.Append("Capturable", formatAmount(intent.AmountCapturable, intent.Currency))
	_ = table.Append("Description", intent.Description)
	_ = table.Append("Client Secret", intent.ClientSecret)
	_ = table.Append("Metadata", formatMetadata(intent.Metadata))
	_ = table.Append("Created", formatTimestamp(intent.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPaymentIntentsCreateCommand() *cobra.Command {
	var (
		amount        int64
		currency      string
		methods       []string
		description   string
		captureMethod string
		metadataPairs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment intent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount == 0 {
				return ErrAmountRequired
			}

			if currency == "" {
				return ErrCurrencyRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			paymentMethods := make([]payrex.PaymentMethodType, 0, len(methods))
			for _, method := range methods {
				paymentMethods = append(paymentMethods, payrex.PaymentMethodType(method))
			}

			request := payrex.NewPaymentIntentCreate(amount, payrex.Currency(currency), paymentMethods...)

			if description != "" {
				request = request.WithDescription(description)
			}

			if captureMethod != "" {
				request = request.WithCaptureMethod(payrex.CaptureMethod(captureMethod))
			}

			metadata, err := parseMetadataFlags(metadataPairs)
			if err != nil {
				return err
			}

			if metadata != nil {
				request = request.WithMetadata(metadata)
			}

			intent, err := client.PaymentIntents().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create payment intent: %w", err)
			}

			return outputPaymentIntent(intent)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in centavos")
	cmd.Flags().StringVar(&currency, "currency", "PHP", "three-letter currency code")
	cmd.Flags().StringSliceVar(&methods, "method", []string{"card"}, "allowed payment methods")
	cmd.Flags().StringVar(&description, "description", "", "description shown to the customer")
	cmd.Flags().StringVar(&captureMethod, "capture-method", "", "capture method (automatic, manual)")
	cmd.Flags().StringArrayVar(&metadataPairs, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newPaymentIntentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a payment intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			intent, err := client.PaymentIntents().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment intent: %w", err)
			}

			return outputPaymentIntent(intent)
		},
	}
}

func newPaymentIntentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a payment intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			intent, err := client.PaymentIntents().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel payment intent: %w", err)
			}

			return outputPaymentIntent(intent)
		},
	}
}

func newPaymentIntentsCaptureCommand() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "capture <id>",
		Short: "Capture an authorized payment intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount == 0 {
				return ErrAmountRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			intent, err := client.PaymentIntents().Capture(context.Background(), args[0],
				payrex.NewPaymentIntentCapture(amount))
			if err != nil {
				return fmt.Errorf("failed to capture payment intent: %w", err)
			}

			return outputPaymentIntent(intent)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to capture in centavos")

	return cmd
}
