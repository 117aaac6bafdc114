// Package payrexclient provides the primary entry point for constructing a
// PayRex API client that implements the payrex.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the payrex package. Most applications
// should import payrexclient to build a client, then use the returned
// payrex.Client to access resource-specific clients, for example
// PaymentIntents(), Customers(), Refunds(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/payrex-community/payrex-go/pkg/payrex"
//	  "github.com/payrex-community/payrex-go/pkg/payrexclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a secret API key.
//	  cli, err := payrexclient.NewWithAPIKey("sk_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or tune timeouts and retries through the builder:
//	  config, err := payrex.NewConfig("sk_live_...").
//	    WithTimeout(10 * time.Second).
//	    WithMaxRetries(5).
//	    Build()
//	  if err != nil { log.Fatal(err) }
//
//	  cli, err = payrexclient.New(config)
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the payrex.Client interface
//	  intent, err := cli.PaymentIntents().Create(ctx,
//	    payrex.NewPaymentIntentCreate(10000, payrex.CurrencyPHP, payrex.PaymentMethodCard))
//	  if err != nil { log.Fatal(err) }
//	  _ = intent
//	}
//
// The API key is sent as the username of an HTTP Basic authorization header
// on every request. It is never logged, even in debug mode.
package payrexclient
