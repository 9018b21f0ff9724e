package fieldguard

// Provider resolves the raw value of a field for one request.
//
// Lookup must not fail: a field that cannot be found is reported as Absent.
type Provider interface {
	Lookup(loc Locator) Value
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(loc Locator) Value

// Lookup calls f(loc).
func (f ProviderFunc) Lookup(loc Locator) Value {
	return f(loc)
}

// Violation is one rejected (locator, validator) pair.
type Violation[E any] struct {
	Kind  Kind   `json:"locator_kind"`
	Name  string `json:"locator_name"`
	Error E      `json:"error"`
}

// Locator returns the locator the violation was found on.
func (v Violation[E]) Locator() Locator {
	return Locator{kind: v.Kind, name: v.Name}
}

// Outcome is the result of dispatching one request.
// The zero Outcome means proceed.
type Outcome[E any] struct {
	violations []Violation[E]
}

// Proceed reports whether every validator accepted the request.
func (o Outcome[E]) Proceed() bool {
	return len(o.violations) == 0
}

// Rejected reports whether at least one validator failed.
func (o Outcome[E]) Rejected() bool {
	return len(o.violations) > 0
}

// Violations returns the failures in the order they were found.
func (o Outcome[E]) Violations() []Violation[E] {
	return o.violations
}

// Dispatch runs every chain of reg against the values resolved by p.
//
// Locators are visited in registration order and each chain runs in full;
// a failing validator never prevents the following ones from running. Each
// locator is looked up once.
func Dispatch[E any](reg *Registry[E], p Provider) Outcome[E] {
	if reg == nil {
		return Outcome[E]{}
	}

	var violations []Violation[E]
	for _, c := range reg.chains {
		value := p.Lookup(c.locator)
		for _, v := range c.validators {
			if err, ok := v.Validate(c.locator.name, value); !ok {
				violations = append(violations, Violation[E]{
					Kind:  c.locator.kind,
					Name:  c.locator.name,
					Error: err,
				})
			}
		}
	}

	return Outcome[E]{violations: violations}
}
