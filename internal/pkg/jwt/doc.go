// Package jwt is helpers for working with JSON Web Tokens (JWT).
//
// It includes:
//   - A typed Claims wrapper (registered claims + scopes).
//   - A symmetric HS512 implementation for generating and verifying tokens.
package jwt
