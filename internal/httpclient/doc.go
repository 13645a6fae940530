// Package httpclient provides the HTTP plumbing for the load generator.
//
// [NewClient] returns a client tuned for sustained concurrent load: keep-alive
// connections, a generous idle pool shared by every worker, and a per-request
// timeout. [RequestBuilder] turns an identifier batch into the GET request the
// discount endpoint expects:
//
//	builder, err := httpclient.NewRequestBuilder("http://localhost:9090/meli_discount")
//	if err != nil {
//		return err
//	}
//	req, err := builder.Build(ctx, []string{"MLA1", "MLA2"})
//
// The target URL is parsed once at construction so a malformed target fails
// before any network work begins.
package httpclient
