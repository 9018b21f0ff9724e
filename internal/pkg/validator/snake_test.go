package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"Name":       "name",
		"FullName":   "full_name",
		"userID":     "user_id",
		"HTTPServer": "http_server",
		"Age2Limit":  "age2_limit",
		"ID":         "id",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, snakeCase(in))
		})
	}
}
