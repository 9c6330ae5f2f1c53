// Package riskapi provides types, interfaces, and helpers for working with
// the StatPro RiskAPI portfolio-risk analytics service.
//
// # Overview
//
// The riskapi package defines the domain types (Portfolio, Holding,
// AnalysisResult), the wire codecs (JSON and the optional msgpack binary
// format), the error taxonomy, and the Client interface grouping the remote
// operations (statics lookups, risk analysis, stress tests, liquidity risk).
// A concrete implementation is provided by the riskclient package, which
// wires configuration, transport, and credentials. Most consumers should
// import riskclient to construct a client and then interact with the
// interfaces exposed here.
//
// All risk computation happens server side; this library only builds
// requests, ships them over HTTP, and decodes the responses.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/statpro-io/riskapi-client/pkg/riskapi"
//	  "github.com/statpro-io/riskapi-client/pkg/riskclient"
//	)
//
//	func main() {
//	  ctx := context.Background()
//
//	  client, err := riskclient.Connect(ctx)
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  pf := riskapi.NewPortfolio("EUR")
//	  pf.Add("US0003041052", riskapi.WithQuantity(13000))
//
//	  result, err := client.Risk(ctx, pf, &riskapi.RiskOptions{
//	    Percentiles: []float64{99},
//	  })
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//	  _ = result
//	}
//
// # Error handling
//
// Remote failures surface as *HTTPError carrying the numeric status code the
// server answered with, or as *RetryError after the transport exhausted its
// retry budget against sustained connection failures. Both support
// errors.As; see IsHTTPStatus for status-based branching.
package riskapi
