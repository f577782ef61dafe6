package interfaces

import "errors"

// ErrVersionConflict is returned by repository Update methods when the stored
// document's version no longer matches the one the caller read. The write is
// rejected instead of silently overwriting a concurrent update.
var ErrVersionConflict = errors.New("version conflict")
