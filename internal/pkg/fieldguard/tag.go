package fieldguard

import (
	"errors"
	"fmt"
)

// VarValidator validates a single value against a go-playground tag.
// validator.V10Validator implements it.
type VarValidator interface {
	ValidateVar(field string, value any, tag string) error
}

// Tag rejects a present value that fails the go-playground validation tag,
// e.g. Tag(v, "alpha") or Tag(v, "uuid4"). The message is the translated
// go-playground message.
func Tag(v VarValidator, tag string) Validator[string] {
	return present(func(name, value string) (string, bool) {
		err := v.ValidateVar(name, value, tag)
		if err == nil {
			return "", true
		}

		var fields interface{ Values() map[string]string }
		if errors.As(err, &fields) {
			if msg, ok := fields.Values()[name]; ok {
				return msg, false
			}
		}
		return fmt.Sprintf("field '%s' = '%s' does not satisfy '%s'", name, value, tag), false
	})
}
