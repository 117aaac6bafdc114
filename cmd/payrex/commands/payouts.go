package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// NewPayoutsCommand creates the payouts command group
func NewPayoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Inspect payouts",
		Long:  "Retrieve payouts and the balance transactions they contain",
	}

	cmd.AddCommand(newPayoutsGetCommand())
	cmd.AddCommand(newPayoutsListCommand())
	cmd.AddCommand(newPayoutsTransactionsCommand())

	return cmd
}

func newPayoutsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a payout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			payout, err := client.Payouts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payout: %w", err)
			}

			if rendered, err := renderStructured(payout); rendered {
				return err
			}

			destination := ""
			if payout.Destination != nil {
				destination = fmt.Sprintf("%s %s", payout.Destination.BankName,
					payout.Destination.AccountNumber)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", payout.ID)
			_ = table.Append("Status", string(payout.Status))
			_ = table.Append("Amount", formatAmount(payout.Amount, payrex.CurrencyPHP))
			_ = table.Append("Net", formatAmount(payout.NetAmount, payrex.CurrencyPHP))
			_ = table.Append("Destination", destination)
			_ = table.Append("Created", formatTimestamp(payout.CreatedAt))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newPayoutsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &payrex.ListParams{Limit: limit}

			payouts, err := client.Payouts().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list payouts: %w", err)
			}

			if rendered, err := renderStructured(payouts.Data); rendered {
				return err
			}

			if len(payouts.Data) == 0 {
				fmt.Println("No payouts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Status", "Amount", "Net", "Created")

			for _, payout := range payouts.Data {
				_ = table.Append(payout.ID, string(payout.Status),
					formatAmount(payout.Amount, payrex.CurrencyPHP),
					formatAmount(payout.NetAmount, payrex.CurrencyPHP),
					formatTimestamp(payout.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}

func newPayoutsTransactionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions <id>",
		Short: "List the balance transactions inside a payout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &payrex.ListParams{Limit: limit}

			transactions, err := client.Payouts().ListTransactions(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list payout transactions: %w", err)
			}

			if rendered, err := renderStructured(transactions.Data); rendered {
				return err
			}

			if len(transactions.Data) == 0 {
				fmt.Println("No transactions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Amount", "Net", "Source", "Created")

			for _, transaction := range transactions.Data {
				_ = table.Append(transaction.ID, string(transaction.TransactionType),
					formatAmount(transaction.Amount, payrex.CurrencyPHP),
					formatAmount(transaction.NetAmount, payrex.CurrencyPHP),
					transaction.TransactionID, formatTimestamp(transaction.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}
