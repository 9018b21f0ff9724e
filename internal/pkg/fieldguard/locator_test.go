package fieldguard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocator(t *testing.T) {
	t.Run("header names are canonical", func(t *testing.T) {
		assert.Equal(t, Header("X-Api-Key"), Header("x-api-key"))
		assert.Equal(t, "X-Api-Key", Header("x-API-key").Name())
	})

	t.Run("kinds separate equal names", func(t *testing.T) {
		assert.NotEqual(t, Param("age"), QueryParam("age"))
		assert.NotEqual(t, Cookie("age"), QueryParam("age"))
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[Locator]int{QueryParam("age"): 1}
		assert.Equal(t, 1, m[QueryParam("age")])
		assert.Zero(t, m[Param("age")])
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "query:age", QueryParam("age").String())
		assert.Equal(t, "param:name", Param("name").String())
		assert.Equal(t, "cookie:session", Cookie("session").String())
		assert.Equal(t, "header:Authorization", Header("authorization").String())
	})
}

func TestKind_MarshalText(t *testing.T) {
	b, err := json.Marshal([]Kind{KindParam, KindQuery, KindCookie, KindHeader, Kind(0)})
	assert.NoError(t, err)
	assert.JSONEq(t, `["param","query","cookie","header","unknown"]`, string(b))
}
