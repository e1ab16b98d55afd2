// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrNoUsableData indicates that no record survived filtering, so no Node could
// be built. Callers should refresh the input data; retrying is pointless.
// Usage: if errors.Is(err, ErrNoUsableData) { /* ask for a data refresh */ }.
var ErrNoUsableData = errors.New("builder: no usable embeddings, refresh the source data")
