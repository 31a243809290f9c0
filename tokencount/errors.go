package tokencount

import "errors"

// Error policy: only sentinel variables are exposed; callers branch on
// semantics with errors.Is, never string comparison.

// ErrEmptyEncoding indicates Counter was asked to load the empty encoding
// name.
var ErrEmptyEncoding = errors.New("tokencount: encoding name must not be empty")
