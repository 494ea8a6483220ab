// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooSmall indicates a dimension parameter below the allowed minimum.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: parameter too small")
