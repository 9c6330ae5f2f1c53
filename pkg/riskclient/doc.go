// Package riskclient provides the primary entry point for constructing a
// RiskAPI client that implements the riskapi.Client interface.
//
// It layers configuration-file loading and connection defaults on top of the
// operation interfaces and types defined in the riskapi package. Most
// applications should import riskclient to build a client, then use the
// returned riskapi.Client to run analyses.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/statpro-io/riskapi-client/pkg/riskapi"
//	  "github.com/statpro-io/riskapi-client/pkg/riskclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Explicit configuration:
//	  cli, err := riskclient.New(ctx, &riskapi.Config{
//	    Host:     "api.risk.statpro.com",
//	    Customer: "internal",
//	    Username: "user",
//	    Password: "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from ~/.riskapi.conf, optionally with overrides:
//	  cli, err = riskclient.Connect(ctx, riskclient.WithCustomer("acme"))
//	  if err != nil { log.Fatal(err) }
//
//	  portfolio := riskapi.NewPortfolio("EUR")
//	  portfolio.Add("US0003041052", riskapi.WithQuantity(13000))
//
//	  result, err := cli.Risk(ctx, portfolio, &riskapi.RiskOptions{
//	    Percentiles: []float64{95},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Configuration file
//
// Connect reads an INI file at ~/.riskapi.conf with a [client] section
// holding host, customer, user, and password. Values passed as overrides win
// over the file; the file wins over the package defaults.
//
// # Local development
//
// ConnectLocal targets an unauthenticated development server on
// localhost:8000 over plain http.
package riskclient
