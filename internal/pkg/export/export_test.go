package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeAttributes(t *testing.T) {
	assert.Equal(t, "{}", SerializeAttributes(nil))
	assert.Equal(t, "{}", SerializeAttributes(map[string]any{}))

	out := SerializeAttributes(map[string]any{"course": "algorithms", "group": 301})
	assert.Contains(t, out, `"course":"algorithms"`)
	assert.Contains(t, out, `"group":301`)
}

func TestSerializeAttributesUnmarshalable(t *testing.T) {
	// channels cannot be marshalled, the serializer degrades to an empty object
	out := SerializeAttributes(map[string]any{"ch": make(chan int)})
	assert.Equal(t, "{}", out)
}
