// Package consultario provides a Go client for the consultar.io API, a lookup
// service for Brazilian taxpayer registry identifiers (CNPJ and CPF).
//
// The root package exposes a generic lookup client; the services packages add
// typed result shapes per resource.
//
// # Quick Start
//
//	client, err := consultario.New(
//	    consultario.WithToken("your-api-token"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	api := cnpj.NewClient(client)
//	company, err := api.Lookup(context.Background(), "42515236000100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cnpj.Format(os.Stdout, company)
//
// # Configuration
//
// Use functional options to configure the client:
//
//	client, err := consultario.New(
//	    consultario.WithToken("your-api-token"),
//	    consultario.WithTimeout(10*time.Second),
//	    consultario.WithRetry(consultario.DefaultRetryConfig()),
//	)
//
// By default each lookup is a single attempt with a 30 second timeout and no
// caching; retries and a TTL response cache are opt-in.
//
// # Error Handling
//
// HTTP statuses are classified once at the client boundary into typed errors
// that work with errors.Is:
//
//	_, err := api.Lookup(ctx, number)
//	if consultario.IsNotFound(err) {
//	    // identifier has no registry record
//	}
//	if consultario.IsAuthError(err) {
//	    // bad token or inactive plan
//	}
//
// Network-level failures and unexpected statuses surface as *TransportError.
// UserMessage returns the user-facing message for any classified error.
//
// # Thread Safety
//
// The Client is safe for concurrent use from multiple goroutines.
package consultario
