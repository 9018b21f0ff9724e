package fieldguard

// Value is the raw value of a field as found in the request, or its absence.
//
// A present empty string ("?age=") is not the same as an absent field.
type Value struct {
	raw     string
	present bool
}

// Present returns a Value holding s.
func Present(s string) Value {
	return Value{raw: s, present: true}
}

// Absent returns a Value for a field missing from the request.
func Absent() Value {
	return Value{}
}

// Get returns the raw string and whether the field was present.
func (v Value) Get() (string, bool) {
	return v.raw, v.present
}

// IsPresent reports whether the field was present in the request.
func (v Value) IsPresent() bool {
	return v.present
}

// Validator checks one field value.
//
// Validate returns ok=true when the value is accepted; the returned error
// value is then ignored. Implementations must be safe for concurrent use and
// must not keep per-request state.
type Validator[E any] interface {
	Validate(name string, value Value) (err E, ok bool)
}

// Func adapts an ordinary function to the Validator interface.
type Func[E any] func(name string, value Value) (E, bool)

// Validate calls f(name, value).
func (f Func[E]) Validate(name string, value Value) (E, bool) {
	return f(name, value)
}

// Map lifts a validator producing string messages into one producing E.
//
// It is meant for reusing the stock rules of this package with a custom
// error type.
func Map[E any](v Validator[string], fn func(name, msg string) E) Validator[E] {
	return Func[E](func(name string, value Value) (E, bool) {
		msg, ok := v.Validate(name, value)
		if ok {
			var zero E
			return zero, true
		}
		return fn(name, msg), false
	})
}
