package export

import "errors"

// ErrEncode wraps failures writing an export document.
var ErrEncode = errors.New("export encode failed")
