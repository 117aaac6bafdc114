// Package payrex provides types, interfaces, and helpers for working with
// the PayRex payment processing API.
//
// # Overview
//
// The payrex package defines the domain types (e.g., PaymentIntent, Customer,
// Refund, CheckoutSession) and the interfaces for resource-oriented clients
// (e.g., PaymentIntentsClient, CustomersClient). A concrete implementation of
// these clients is provided by the payrexclient package, which wires
// configuration, transport, authentication and retries. Most consumers should
// import payrexclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
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
//	  cfg, err := payrex.NewConfig("sk_test_...").Build()
//	  if err != nil { log.Fatal(err) }
//
//	  cli, err := payrexclient.New(cfg)
//	  if err != nil { log.Fatal(err) }
//
//	  intent, err := cli.PaymentIntents().Create(ctx,
//	    payrex.NewPaymentIntentCreate(10000, payrex.CurrencyPHP, payrex.PaymentMethodCard))
//	  if err != nil { log.Fatal(err) }
//	  _ = intent
//	}
//
// # Amounts
//
// All monetary amounts are positive integers in the smallest currency unit
// (centavos). A price of PHP 120.50 is expressed as 12050.
//
// # Errors
//
// Every failure surfaces as a *payrex.Error carrying a closed ErrorKind.
// Predicates such as IsValidation and IsRateLimit classify errors without
// inspecting strings, and Error.Retryable reports whether retrying the call
// could succeed.
package payrex
