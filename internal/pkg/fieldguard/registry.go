package fieldguard

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type chain[E any] struct {
	locator    Locator
	validators []Validator[E]
}

// Builder collects validators during setup. It is not safe for concurrent
// use; call Build once registration is complete and share the Registry.
type Builder[E any] struct {
	chains []chain[E]
	index  map[Locator]int
}

// NewBuilder returns an empty Builder.
func NewBuilder[E any]() *Builder[E] {
	return &Builder[E]{index: make(map[Locator]int)}
}

// Add appends v to the chain of loc, creating the chain on first use.
// Validators run in the order they were added.
func (b *Builder[E]) Add(loc Locator, v Validator[E]) *Builder[E] {
	if v == nil {
		panic(fmt.Sprintf("fieldguard: nil validator for %s", loc))
	}

	i, ok := b.index[loc]
	if !ok {
		i = len(b.chains)
		b.index[loc] = i
		b.chains = append(b.chains, chain[E]{locator: loc})
	}
	b.chains[i].validators = append(b.chains[i].validators, v)

	return b
}

// AddFunc is Add for a plain function.
func (b *Builder[E]) AddFunc(loc Locator, fn func(name string, value Value) (E, bool)) *Builder[E] {
	if fn == nil {
		panic(fmt.Sprintf("fieldguard: nil validator for %s", loc))
	}
	return b.Add(loc, Func[E](fn))
}

// AddChain appends every validator in vs to the chain of loc.
func (b *Builder[E]) AddChain(loc Locator, vs ...Validator[E]) *Builder[E] {
	for _, v := range vs {
		b.Add(loc, v)
	}
	return b
}

// Build returns an immutable snapshot of the registered chains.
// The Builder can keep being used; the snapshot does not see later changes.
func (b *Builder[E]) Build() *Registry[E] {
	chains := make([]chain[E], len(b.chains))
	for i, c := range b.chains {
		chains[i] = chain[E]{locator: c.locator, validators: slices.Clone(c.validators)}
	}

	index := make(map[Locator]int, len(b.index))
	for loc, i := range b.index {
		index[loc] = i
	}

	return &Registry[E]{chains: chains, index: index}
}

// Registry is a frozen set of validator chains keyed by Locator.
// It is read-only and safe to share between goroutines.
type Registry[E any] struct {
	chains []chain[E]
	index  map[Locator]int
}

// Locators returns the registered locators in first-registration order.
func (r *Registry[E]) Locators() []Locator {
	if r == nil {
		return nil
	}
	return lo.Map(r.chains, func(c chain[E], _ int) Locator {
		return c.locator
	})
}

// Chain returns a copy of the validators registered for loc.
func (r *Registry[E]) Chain(loc Locator) []Validator[E] {
	if r == nil {
		return nil
	}
	i, ok := r.index[loc]
	if !ok {
		return nil
	}
	return slices.Clone(r.chains[i].validators)
}

// Len returns the number of registered locators.
func (r *Registry[E]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.chains)
}
