// Package vies validates EU VAT identification numbers against the
// European Commission's VIES checkVatService.
//
// The client speaks the single checkVat SOAP operation: it fills a
// fixed request envelope with a country code and VAT number, posts it,
// and extracts the validity flag plus the registered name and address
// from the response.
//
// # Basic Usage
//
//	resp, err := vies.DoCheck(ctx, "IT", "00950501007")
//	if err != nil {
//	    // transport failure, malformed response, or missing argument
//	}
//	if resp.Valid {
//	    fmt.Println(resp.Name, resp.Address)
//	}
//
// # Custom Transport
//
// The network exchange is injectable, which is the package's only
// extension point:
//
//	client := vies.New(vies.WithTransport(transport.Fixture(recordedResponse)))
//	resp, err := client.Check(ctx, "DE", "129273398")
//
// Response parsing is hardened against hostile XML (see package
// securexml) and tolerant of whatever namespace prefixes the service
// uses. All state shared between calls is immutable, so a single
// Client may be used from any number of goroutines.
package vies
