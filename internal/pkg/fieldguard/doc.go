// Package fieldguard validates request fields before a route handler runs.
//
// Rules are registered against a Locator (path parameter, query parameter,
// cookie or header) on a Builder. The Builder is frozen into an immutable
// Registry, and Dispatch runs every rule against the values a Provider
// resolves for one request. All failures are collected; none of them stop
// the remaining rules from running.
//
// Middleware and GinMiddleware attach a Registry to a route and answer a
// rejected request with a single JSON body listing every violation.
package fieldguard
