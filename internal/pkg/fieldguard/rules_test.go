package fieldguard

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    Validator[string]
		value   Value
		wantOK  bool
		wantMsg string
	}{
		{name: "Required/Absent", rule: Required(), value: Absent(), wantMsg: "'f' is mandatory"},
		{name: "Required/Empty", rule: Required(), value: Present(""), wantOK: true},
		{name: "Number/Valid", rule: Number(), value: Present("-42"), wantOK: true},
		{name: "Number/Float", rule: Number(), value: Present("4.2"), wantMsg: "field 'f' = '4.2' is not a valid number"},
		{name: "Number/Empty", rule: Number(), value: Present(""), wantMsg: "field 'f' = '' is not a valid number"},
		{name: "Number/Int64Max", rule: Number(), value: Present("9223372036854775807"), wantOK: true},
		{name: "Integer32/Max", rule: Integer(32), value: Present("2147483647"), wantOK: true},
		{name: "Integer32/Min", rule: Integer(32), value: Present("-2147483648"), wantOK: true},
		{name: "Integer32/Overflow", rule: Integer(32), value: Present("3000000000"), wantMsg: "field 'f' = '3000000000' is not a valid number"},
		{name: "Number/Absent", rule: Number(), value: Absent(), wantOK: true},
		{name: "Bool/True", rule: Bool(), value: Present("true"), wantOK: true},
		{name: "Bool/False", rule: Bool(), value: Present("false"), wantOK: true},
		{name: "Bool/One", rule: Bool(), value: Present("1"), wantMsg: "field 'f' = '1' is not a valid boolean"},
		{name: "MaxLength/Equal", rule: MaxLength(3), value: Present("abc"), wantOK: true},
		{name: "MaxLength/Runes", rule: MaxLength(3), value: Present("äöü"), wantOK: true},
		{name: "MaxLength/Over", rule: MaxLength(3), value: Present("abcd"), wantMsg: "field 'f' = 'abcd' exceeds the maximum length of 3"},
		{name: "MaxLength/Absent", rule: MaxLength(3), value: Absent(), wantOK: true},
		{name: "MinLength/Under", rule: MinLength(2), value: Present("a"), wantMsg: "field 'f' = 'a' is shorter than the minimum length of 2"},
		{name: "MinLength/Equal", rule: MinLength(2), value: Present("ab"), wantOK: true},
		{name: "Pattern/Match", rule: Pattern(regexp.MustCompile(`^[a-z]+$`)), value: Present("cat"), wantOK: true},
		{name: "Pattern/NoMatch", rule: Pattern(regexp.MustCompile(`^[a-z]+$`)), value: Present("Cat1"), wantMsg: "field 'f' = 'Cat1' does not match ^[a-z]+$"},
		{name: "OneOf/Member", rule: OneOf("a", "b"), value: Present("b"), wantOK: true},
		{name: "OneOf/Other", rule: OneOf("a", "b"), value: Present("c"), wantMsg: "field 'f' = 'c' must be one of [a b]"},
		{name: "OneOf/Absent", rule: OneOf("a", "b"), value: Absent(), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.rule.Validate("f", tt.value)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}
