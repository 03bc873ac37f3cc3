// SPDX-License-Identifier: MIT

package shape

import "errors"

// ErrUnknownShape is returned when a name or shape is not in the registry.
var ErrUnknownShape = errors.New("shape: unknown shape")
