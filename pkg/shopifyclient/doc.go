// Package shopifyclient wires configuration, transport, and the resource
// repositories into a ready-to-use shopify.Client.
//
//	cli, err := shopifyclient.New(&shopify.Config{})
//	if err != nil { ... }
//
//	creds := &shopify.Credentials{ShopDomain: "example", AccessToken: token}
//	err = cli.Orders().Each(ctx, creds, nil, func(order shopify.Record) error {
//	  fmt.Println(order.ID())
//	  return nil
//	})
package shopifyclient
