package fieldguard

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Required rejects a field missing from the request.
func Required() Validator[string] {
	return Func[string](func(name string, value Value) (string, bool) {
		if !value.IsPresent() {
			return fmt.Sprintf("'%s' is mandatory", name), false
		}
		return "", true
	})
}

// Number rejects a present value that is not a base 10 int64.
func Number() Validator[string] {
	return Integer(64)
}

// Integer rejects a present value that is not a base 10 integer fitting in
// bitSize bits. Use it when the handler parses the value into a narrower type.
func Integer(bitSize int) Validator[string] {
	return present(func(name, v string) (string, bool) {
		if _, err := strconv.ParseInt(v, 10, bitSize); err != nil {
			return fmt.Sprintf("field '%s' = '%s' is not a valid number", name, v), false
		}
		return "", true
	})
}

// Bool rejects a present value other than "true" or "false".
func Bool() Validator[string] {
	return present(func(name, v string) (string, bool) {
		if v != "true" && v != "false" {
			return fmt.Sprintf("field '%s' = '%s' is not a valid boolean", name, v), false
		}
		return "", true
	})
}

// MaxLength rejects a present value longer than n characters.
func MaxLength(n int) Validator[string] {
	return present(func(name, v string) (string, bool) {
		if utf8.RuneCountInString(v) > n {
			return fmt.Sprintf("field '%s' = '%s' exceeds the maximum length of %d", name, v, n), false
		}
		return "", true
	})
}

// MinLength rejects a present value shorter than n characters.
func MinLength(n int) Validator[string] {
	return present(func(name, v string) (string, bool) {
		if utf8.RuneCountInString(v) < n {
			return fmt.Sprintf("field '%s' = '%s' is shorter than the minimum length of %d", name, v, n), false
		}
		return "", true
	})
}

// Pattern rejects a present value that re does not match.
func Pattern(re *regexp.Regexp) Validator[string] {
	return present(func(name, v string) (string, bool) {
		if !re.MatchString(v) {
			return fmt.Sprintf("field '%s' = '%s' does not match %s", name, v, re), false
		}
		return "", true
	})
}

// OneOf rejects a present value that is not one of values.
func OneOf(values ...string) Validator[string] {
	allowed := slices.Clone(values)
	return present(func(name, v string) (string, bool) {
		if !slices.Contains(allowed, v) {
			return fmt.Sprintf("field '%s' = '%s' must be one of %v", name, v, allowed), false
		}
		return "", true
	})
}

// present builds a validator that accepts absence and checks present values.
func present(check func(name, v string) (string, bool)) Validator[string] {
	return Func[string](func(name string, value Value) (string, bool) {
		v, ok := value.Get()
		if !ok {
			return "", true
		}
		return check(name, v)
	})
}
