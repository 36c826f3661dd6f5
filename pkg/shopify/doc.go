// Package shopify provides types, interfaces, and helpers for building typed
// resource accessors over the Shopify Admin REST API.
//
// # Overview
//
// The shopify package defines the domain types (Credentials, Record, Params)
// and the Repository interface every resource accessor exposes: Find, Count,
// Delete, and since-id iteration via Each, Iterate, and All. A concrete
// implementation is provided by the shopifyclient package, which wires
// configuration, transport, and the per-resource repositories. Most consumers
// should import shopifyclient to construct a client and then interact with
// the repositories exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/lucidnz/shopify-resource/pkg/shopify"
//	  "github.com/lucidnz/shopify-resource/pkg/shopifyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := shopifyclient.New(&shopify.Config{APIVersion: "2024-01"})
//	  if err != nil { log.Fatal(err) }
//
//	  creds := &shopify.Credentials{ShopDomain: "example", AccessToken: "shpat_..."}
//	  count, err := cli.Orders().Count(ctx, creds, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = count
//	}
//
// # Parameters and pagination
//
// Params express query-string filters; three layers merge before every
// request, lowest to highest precedence: the platform default (limit 50),
// the repository's declared defaults, and the per-call Params. Iteration
// walks the collection through a since-id cursor:
//
//	it, err := cli.Orders().Iterate(ctx, creds, shopify.Params{"fields": []string{"id", "total_price"}})
//	if err != nil { log.Fatal(err) }
//	for it.HasNext() {
//	  order, err := it.Next()
//	  if err != nil { break }
//	  _ = order
//	}
//
// Pages are fetched on demand, at most one buffered ahead, so a consumer
// that stops early triggers no further requests. A fields restriction must
// include "id" or iteration fails with ErrPaginateWithoutID before any
// request — the cursor cannot advance without it.
//
// # Errors
//
// API failures are represented by APIError. Helpers such as IsNotFound,
// IsUnauthorized, and IsRateLimited make it easy to branch on common cases.
// This package performs no retries of its own; transient-failure retry lives
// in the transport.
//
// # Caching
//
// An optional GET response cache (in-memory or NATS KV) can be enabled
// through Config.Cache; it is off by default and never used for iteration.
package shopify
