package eval

import (
	"errors"
	"sync"

	"github.com/born-ml/tensorism/internal/index"
	"github.com/born-ml/tensorism/internal/tensor"
)

// Evaluation errors not covered by index resolution.
var (
	ErrSequenceReused = errors.New("reduction sequence consumed twice")
	ErrNotScalar      = errors.New("expression has free indices")
)

// failure carries an error raised inside an expression body up to the
// enclosing Evaluate call.
type failure struct {
	err error
}

func raise(err error) {
	panic(failure{err: err})
}

// errCrashed stops the enumeration after a panic that is not an evaluation
// error; the panic itself is re-raised by crashed.rethrow.
var errCrashed = errors.New("expression body panicked")

// crashed holds the first foreign panic raised while filling a result, so
// it can be re-raised on the goroutine that called Evaluate.
type crashed struct {
	once  sync.Once
	value any
	set   bool
}

// catch converts failures raised during evaluation into an error. Other
// panics are recorded and reported as errCrashed.
func (c *crashed) catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := evalError(r); ok {
		*errp = err
		return
	}
	c.once.Do(func() {
		c.value = r
		c.set = true
	})
	*errp = errCrashed
}

// rethrow re-raises the recorded panic, if any. Call it only after every
// worker has returned.
func (c *crashed) rethrow() {
	if c.set {
		panic(c.value)
	}
}

func evalError(r any) (error, bool) {
	switch v := r.(type) {
	case failure:
		return v.err, true
	case error:
		return v, isEvalError(v)
	}
	return nil, false
}

func isEvalError(err error) bool {
	for _, target := range []error{
		tensor.ErrIndexOutOfRange,
		tensor.ErrShapeMismatch,
		index.ErrDimensionMismatch,
		index.ErrUnboundIndex,
		index.ErrDuplicateIndex,
		ErrSequenceReused,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
