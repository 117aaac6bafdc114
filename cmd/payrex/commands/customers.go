package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/payrex-community/payrex-go/pkg/payrex"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
		Long:  "Create, retrieve, update, list, and delete customers",
	}

	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func outputCustomer(customer *payrex.Customer) error {
	if rendered, err := renderStructured(customer); rendered {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", customer.ID)
	_ = table.Append("Name", customer.Name)
	_ = table.Append("Email", customer.Email)
	_ = table.Append("Currency", string(customer.Currency))
	_ = table.Append("Statement Prefix", customer.BillingStatementPrefix)
	_ = table.Append("Metadata", formatMetadata(customer.Metadata))
	_ = table.Append("Created", formatTimestamp(customer.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		name          string
		email         string
		currency      string
		prefix        string
		metadataPairs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := payrex.NewCustomerCreate()

			if name != "" {
				request = request.WithName(name)
			}

			if email != "" {
				request = request.WithEmail(email)
			}

			if currency != "" {
				request = request.WithCurrency(payrex.Currency(currency))
			}

			if prefix != "" {
				request = request.WithBillingStatementPrefix(prefix)
			}

			metadata, err := parseMetadataFlags(metadataPairs)
			if err != nil {
				return err
			}

			if metadata != nil {
				request = request.WithMetadata(metadata)
			}

			customer, err := client.Customers().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&currency, "currency", "", "default currency")
	cmd.Flags().StringVar(&prefix, "statement-prefix", "", "billing statement prefix")
	cmd.Flags().StringArrayVar(&metadataPairs, "metadata", nil, "metadata as key=value (repeatable)")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}
}

func newCustomersUpdateCommand() *cobra.Command {
	var (
		name  string
		email string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := payrex.NewCustomerUpdate()

			if name != "" {
				request = request.WithName(name)
			}

			if email != "" {
				request = request.WithEmail(email)
			}

			customer, err := client.Customers().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			return outputCustomer(customer)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&email, "email", "", "customer email")

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		email string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &payrex.CustomerListParams{Email: email}
			params.Limit = limit

			customers, err := client.Customers().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			if rendered, err := renderStructured(customers.Data); rendered {
				return err
			}

			if len(customers.Data) == 0 {
				fmt.Println("No customers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Email", "Currency", "Created")

			for _, customer := range customers.Data {
				_ = table.Append(customer.ID, customer.Name, customer.Email,
					string(customer.Currency), formatTimestamp(customer.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "filter by email")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Customers().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			fmt.Printf("Deleted customer %s\n", args[0])

			return nil
		},
	}
}
