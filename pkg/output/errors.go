package output

import "errors"

var ErrUnsupportedFormat = errors.New("output: unsupported image format")
