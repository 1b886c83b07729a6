package domain

// Result holds exactly one of a value or an error, so call sites branch once
// on Err instead of threading multiple return values through view code.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure. A nil err yields an Ok result with the zero value.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Collect converts a conventional (value, error) return into a Result.
func Collect[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

// Err returns the error slot; nil means the value slot is populated.
func (r Result[T]) Err() error { return r.err }

// Value returns the value slot. Only meaningful when Err is nil.
func (r Result[T]) Value() T { return r.value }

// Unpack returns the conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) { return r.value, r.err }
