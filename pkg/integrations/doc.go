// Package integrations provides HTTP clients for source-control hosting APIs.
//
// # Overview
//
// The [Client] type holds the shared plumbing: default headers, a bounded
// request timeout and the mapping of HTTP statuses onto sentinel errors.
// Provider-specific clients embed it:
//
//   - [github]: raw file content and the REST branch listing
//
// # Errors
//
// Callers distinguish outcomes with errors.Is:
//
//   - [ErrNotFound]: 404, the file or repository does not exist
//   - [ErrRateLimited]: 403 or 429 from an exhausted API quota
//   - [ErrNetwork]: transport failures, timeouts and any other status
//
// Requests are never retried and responses are never cached; every call is a
// single GET.
//
// # Observability
//
// Every request reports to the hooks registered with
// [observability.SetHTTPHooks].
//
// [github]: github.com/manivaultstudio/plugintable/pkg/integrations/github
// [observability.SetHTTPHooks]: github.com/manivaultstudio/plugintable/pkg/observability.SetHTTPHooks
package integrations
