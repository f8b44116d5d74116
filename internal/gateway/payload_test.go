package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectArg(t *testing.T) {
	assert.Nil(t, objectArg(nil))
	assert.Nil(t, objectArg([]interface{}{}))
	assert.Nil(t, objectArg([]interface{}{"not an object"}))

	m := objectArg([]interface{}{map[string]interface{}{"code": "AAAAA"}})
	assert.Equal(t, "AAAAA", m["code"])
}

func TestStringField(t *testing.T) {
	m := map[string]interface{}{
		"name": "Ana",
		"n":    42.0,
	}
	assert.Equal(t, "Ana", stringField(m, "name"))
	assert.Equal(t, "", stringField(m, "n"), "non-string values decode to empty")
	assert.Equal(t, "", stringField(m, "missing"))
	assert.Equal(t, "", stringField(nil, "name"))
}
