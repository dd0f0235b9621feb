package transport

import "errors"

var (
	ErrEncodeRequest  = errors.New("failed to encode request")
	ErrBuildRequest   = errors.New("failed to build request")
	ErrReadResponse   = errors.New("failed to read response")
	ErrDecodeResponse = errors.New("failed to decode response")
)
