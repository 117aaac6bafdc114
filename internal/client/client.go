// Package client provides the concrete implementation of the payrex.Client
// interface and its per-resource clients.
package client

import (
	payrexhttp "github.com/payrex-community/payrex-go/internal/http"
	"github.com/payrex-community/payrex-go/pkg/payrex"
)

// Client implements the payrex.Client interface.
type Client struct {
	httpClient *payrexhttp.Client

	// Resource clients
	paymentIntents            payrex.PaymentIntentsClient
	customers                 payrex.CustomersClient
	payments                  payrex.PaymentsClient
	refunds                   payrex.RefundsClient
	checkoutSessions          payrex.CheckoutSessionsClient
	webhooks                  payrex.WebhooksClient
	billingStatements         payrex.BillingStatementsClient
	billingStatementLineItems payrex.BillingStatementLineItemsClient
	payouts                   payrex.PayoutsClient
	events                    payrex.EventsClient
}

// New creates a client from a validated Config. Credential handling, retry
// policy and logging are wired into the shared HTTP dispatcher; every
// resource client reuses it.
func New(config *payrex.Config) (*Client, error) {
	if config == nil {
		return nil, payrex.NewError(payrex.ErrorKindConfiguration, payrex.ErrConfigRequired.Error())
	}

	if config.APIKey == "" {
		return nil, payrex.NewError(payrex.ErrorKindConfiguration, payrex.ErrAPIKeyRequired.Error())
	}

	opts := []payrexhttp.Option{
		payrexhttp.WithTimeout(config.Timeout),
		payrexhttp.WithRetryConfig(config.MaxRetries, config.RetryDelay, config.RetryWaitMax),
		payrexhttp.WithUserAgent(config.UserAgent),
	}

	if config.Logger != nil {
		opts = append(opts, payrexhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, payrexhttp.WithDebug(true))
	}

	httpClient := payrexhttp.NewClient(config.BaseURL, config.APIKey, opts...)

	client := &Client{httpClient: httpClient}
	client.initResourceClients()

	return client, nil
}

func (c *Client) initResourceClients() {
	c.paymentIntents = NewPaymentIntentsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.checkoutSessions = NewCheckoutSessionsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.billingStatements = NewBillingStatementsClient(c.httpClient)
	c.billingStatementLineItems = NewBillingStatementLineItemsClient(c.httpClient)
	c.payouts = NewPayoutsClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
}

// PaymentIntents returns the payment intents client.
func (c *Client) PaymentIntents() payrex.PaymentIntentsClient {
	return c.paymentIntents
}

// Customers returns the customers client.
func (c *Client) Customers() payrex.CustomersClient {
	return c.customers
}

// Payments returns the payments client.
func (c *Client) Payments() payrex.PaymentsClient {
	return c.payments
}

// Refunds returns the refunds client.
func (c *Client) Refunds() payrex.RefundsClient {
	return c.refunds
}

// CheckoutSessions returns the checkout sessions client.
func (c *Client) CheckoutSessions() payrex.CheckoutSessionsClient {
	return c.checkoutSessions
}

// Webhooks returns the webhooks client.
func (c *Client) Webhooks() payrex.WebhooksClient {
	return c.webhooks
}

// BillingStatements returns the billing statements client.
func (c *Client) BillingStatements() payrex.BillingStatementsClient {
	return c.billingStatements
}

// BillingStatementLineItems returns the billing statement line items client.
func (c *Client) BillingStatementLineItems() payrex.BillingStatementLineItemsClient {
	return c.billingStatementLineItems
}

// Payouts returns the payouts client.
func (c *Client) Payouts() payrex.PayoutsClient {
	return c.payouts
}

// Events returns the events client.
func (c *Client) Events() payrex.EventsClient {
	return c.events
}
