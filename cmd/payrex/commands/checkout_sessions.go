package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// Static errors for checkout session commands.
var (
	ErrLineItemRequired       = errors.New("at least one line item is required (--item)")
	ErrRedirectURLsRequired   = errors.New("success and cancel URLs are required (--success-url, --cancel-url)")
	ErrInvalidLineItemFormat  = errors.New("invalid line item: expected name:amount:quantity")
	ErrInvalidLineItemNumbers = errors.New("line item amount and quantity must be integers")
)

// NewCheckoutSessionsCommand creates the checkout-sessions command group
func NewCheckoutSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkout-sessions",
		Aliases: []string{"cs"},
		Short:   "Manage checkout sessions",
		Long:    "Create, retrieve, and expire hosted checkout sessions",
	}

	cmd.AddCommand(newCheckoutSessionsCreateCommand())
	cmd.AddCommand(newCheckoutSessionsGetCommand())
	cmd.AddCommand(newCheckoutSessionsExpireCommand())

	return cmd
}

// parseLineItems turns repeated name:amount:quantity flags into line items.
func parseLineItems(specs []string) ([]payrex.LineItem, error) {
	lineItems := make([]payrex.LineItem, 0, len(specs))

	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLineItemFormat, spec)
		}

		amount, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLineItemNumbers, spec)
		}

		quantity, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLineItemNumbers, spec)
		}

		lineItems = append(lineItems, payrex.LineItem{
			Name:     parts[0],
			Amount:   amount,
			Quantity: quantity,
		})
	}

	return lineItems, nil
}

func outputCheckoutSession(session *payrex.CheckoutSession) error {
	if rendered, err := renderStructured(session); rendered {
		return err
	}

	items := make([]string, 0, len(session.LineItems))
	for _, item := range session.LineItems {
		items = append(items, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}

	paymentIntentID := ""
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	expires := ""
	if session.ExpiresAt != nil {
		expires = formatTimestamp(*session.ExpiresAt)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", session.ID)
	_ = table.Append("Status", string(session.Status))
	_ = table.Append("URL", session.URL)
	_ = table.Append("Line Items", strings.Join(items, ", "))
	_ = table.Append("Payment Intent", paymentIntentID)
	_ = table.Append("Expires", expires)
	_ = table.Append("Created", formatTimestamp(session.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCheckoutSessionsCreateCommand() *cobra.Command {
	var (
		currency   string
		itemSpecs  []string
		successURL string
		cancelURL  string
		methods    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a checkout session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(itemSpecs) == 0 {
				return ErrLineItemRequired
			}

			if successURL == "" || cancelURL == "" {
				return ErrRedirectURLsRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			lineItems, err := parseLineItems(itemSpecs)
			if err != nil {
				return err
			}

			paymentMethods := make([]payrex.PaymentMethodType, 0, len(methods))
			for _, method := range methods {
				paymentMethods = append(paymentMethods, payrex.PaymentMethodType(method))
			}

			request := payrex.NewCheckoutSessionCreate(payrex.Currency(currency),
				lineItems, successURL, cancelURL, paymentMethods...)

			session, err := client.CheckoutSessions().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create checkout session: %w", err)
			}

			return outputCheckoutSession(session)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "PHP", "three-letter currency code")
	cmd.Flags().StringArrayVar(&itemSpecs, "item", nil, "line item as name:amount:quantity (repeatable)")
	cmd.Flags().StringVar(&successURL, "success-url", "", "redirect after successful payment")
	cmd.Flags().StringVar(&cancelURL, "cancel-url", "", "redirect after cancelled payment")
	cmd.Flags().StringSliceVar(&methods, "method", []string{"card"}, "allowed payment methods")

	return cmd
}

func newCheckoutSessionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			session, err := client.CheckoutSessions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get checkout session: %w", err)
			}

			return outputCheckoutSession(session)
		},
	}
}

func newCheckoutSessionsExpireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expire <id>",
		Short: "Expire an active checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			session, err := client.CheckoutSessions().Expire(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to expire checkout session: %w", err)
			}

			return outputCheckoutSession(session)
		},
	}
}
