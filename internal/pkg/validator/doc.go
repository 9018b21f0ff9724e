// Package validator checks whole structs with go-playground/validator v10.
//
// The catalog use cases validate their inputs through Validator, and
// fieldguard.Tag reuses ValidateVar to run a single tag against one request
// field. Failures come back as V10ValidationError keyed by snake_case field
// name, with English messages.
package validator
