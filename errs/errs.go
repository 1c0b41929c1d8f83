// Package errs defines the sentinel errors shared by the bitio, gorilla and
// entropy packages and the numcodec command.
//
// Callers compare against these with errors.Is rather than string matching,
// since some of them reach the caller wrapped with fmt.Errorf("%w", ...).
package errs

import "errors"

var (
	// ErrEndOfStream is returned by a bitio reader, and propagated unchanged
	// by the Gorilla and Entropy decoders, when a caller requests more bits
	// than remain in the logical stream. It is the normal termination signal
	// for a decoder loop, not a corruption indicator by itself.
	ErrEndOfStream = errors.New("numcodec: end of stream")

	// ErrCorruptedInput is raised by the CLI's dump path when a trailing
	// partial read is neither zero bytes nor a full value-width read.
	ErrCorruptedInput = errors.New("numcodec: corrupted input")

	// ErrInvalidWidth is returned when a width other than 32 or 64 is requested.
	ErrInvalidWidth = errors.New("numcodec: width must be 32 or 64")

	// ErrInvalidAlgorithm is returned when an algorithm name other than
	// "gorilla" or "entropy" is requested.
	ErrInvalidAlgorithm = errors.New("numcodec: algorithm must be gorilla or entropy")

	// ErrAlreadyFinished is the value bitio/gorilla/entropy writers and
	// encoders panic with when Add/SafeAdd/Finish is called a second time
	// after Finish has already run. This is caller misuse, not a
	// recoverable runtime condition, so it is panicked rather than
	// returned — callers that need to recover can still match it with
	// errors.Is against the recovered value.
	ErrAlreadyFinished = errors.New("numcodec: encoder already finished")
)
