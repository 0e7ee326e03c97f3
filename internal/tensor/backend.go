package tensor

// Backend defines the numeric operations the layers are written against.
//
// Every result is a freshly allocated tensor rounded to Floatx(); inputs are
// never mutated, so a backend is safe for concurrent use.
//
// Implementations:
//   - internal/backend/cpu: pure Go on top of gonum
type Backend interface {
	// Element-wise binary operations with NumPy broadcasting.
	Add(a, b *Tensor) (*Tensor, error)
	Sub(a, b *Tensor) (*Tensor, error)
	Mul(a, b *Tensor) (*Tensor, error)

	// Scalar operations (element-wise with scalar).
	AddScalar(x *Tensor, scalar float64) *Tensor
	MulScalar(x *Tensor, scalar float64) *Tensor

	// Math operations (element-wise).
	Exp(x *Tensor) *Tensor
	Abs(x *Tensor) *Tensor
	Clip(x *Tensor, lo, hi float64) *Tensor

	// Activation functions.
	Tanh(x *Tensor) *Tensor
	Sigmoid(x *Tensor) *Tensor
	Relu(x *Tensor, alpha float64) *Tensor                  // x if x > 0 else alpha*x.
	Softmax(x *Tensor, temperature float64) (*Tensor, error) // along the last axis.

	// Dot follows NumPy dot: it contracts the last axis of a with the
	// second-to-last axis of b (the only axis when b is a vector).
	Dot(a, b *Tensor) (*Tensor, error)

	// Max reduces along axis, removing it from the shape.
	Max(x *Tensor, axis int) (*Tensor, error)

	// Metadata
	Name() string
	Floatx() DataType
}
