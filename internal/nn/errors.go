package nn

import "github.com/pkg/errors"

// Errors returned by nodes. They are wrapped with context, so match them
// with errors.Is.
var (
	// ErrInsufficientShapeInfo means a node was called but its shapes could
	// not be inferred. Declare the shape at construction instead.
	ErrInsufficientShapeInfo = errors.New("not enough shape information to initialize node")

	// ErrMissingParameter means a parameter name was never created.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrNotInitialized means parameters were requested before the first
	// successful call.
	ErrNotInitialized = errors.New("node not initialized")

	// ErrInvalidElementwiseUse means an elementwise layer has no activation,
	// which would make it an identity node.
	ErrInvalidElementwiseUse = errors.New("no identity nodes allowed")

	// ErrShapeMismatch means an input or neighbouring node disagrees with a
	// shape that is already fixed.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInputCount means a node received the wrong number of inputs.
	ErrInputCount = errors.New("wrong number of inputs")

	// ErrInvalidConfig means a layer option is out of range.
	ErrInvalidConfig = errors.New("invalid layer configuration")
)
