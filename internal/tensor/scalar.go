package tensor

// Lift adapts a tensor-to-tensor function into a scalar-to-scalar one.
// The value is boxed into a 0-D tensor before the call and the single result
// element is unboxed afterwards, so numeric helpers written against RawTensor
// can be applied to plain Go values.
func Lift[T DType](fn func(*RawTensor) (*RawTensor, error)) func(T) (T, error) {
	return func(v T) (T, error) {
		out, err := fn(Scalar(v))
		if err != nil {
			var zero T
			return zero, err
		}
		return Item[T](out)
	}
}
