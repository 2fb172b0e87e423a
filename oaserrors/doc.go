// Package oaserrors provides structured error types for openapi-diff.
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell an unreadable document apart from a comparison that
// must not be attempted at all.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and structural issues
//   - [ValidationError]: OpenAPI structural validation failures
//   - [ConfigError]: Invalid configuration or input options
//   - [IdentityError]: the two documents describe different APIs (x-id mismatch)
//   - [VersionError]: info.version cannot be bumped
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrIdentityMismatch]: Matches any [IdentityError]
//   - [ErrVersion]: Matches any [VersionError]
//
// # Usage Examples
//
//	d := differ.New(source, target)
//	if err := d.Calculate(); errors.Is(err, oaserrors.ErrIdentityMismatch) {
//	    // the caller is diffing unrelated APIs
//	}
//
// Extract details with errors.As():
//
//	var idErr *oaserrors.IdentityError
//	if errors.As(err, &idErr) {
//	    fmt.Printf("x-id %v != %v\n", idErr.Source, idErr.Target)
//	}
package oaserrors
