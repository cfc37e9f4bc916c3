package canny

import "errors"

var (
	// ErrInvalidDimensions is returned when the image width or height is zero or negative.
	ErrInvalidDimensions = errors.New("canny: invalid image dimensions")
	// ErrBufferSizeMismatch is returned when the pixel buffer length differs from width*height.
	ErrBufferSizeMismatch = errors.New("canny: pixel buffer size mismatch")
	// ErrInvalidThresholds is returned when the hysteresis thresholds are out of order or range.
	ErrInvalidThresholds = errors.New("canny: invalid hysteresis thresholds")
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("canny: invalid worker count")
)

// DecodeError reports an image source that could not produce a well-formed pixel buffer.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "canny: unable to decode image: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
