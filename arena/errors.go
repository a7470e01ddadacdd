package arena

import "errors"

var (
	// ErrTooLong indicates a request larger than MaxLen bytes.
	ErrTooLong = errors.New("arena: string exceeds 16-bit length bound")

	// ErrBadSize indicates a negative size request.
	ErrBadSize = errors.New("arena: negative size")

	// ErrFull indicates a write past the bytes reserved for a string.
	ErrFull = errors.New("arena: write exceeds reserved size")

	// ErrMapFailed indicates the operating system refused a new block.
	ErrMapFailed = errors.New("arena: block allocation failed")
)
