package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	var m Memory
	assert.Equal(t, "", m.Last())

	var w Writer = &m
	assert.NoError(t, w.Write("first"))
	assert.NoError(t, w.Write("second"))

	assert.Equal(t, "second", m.Last())
	assert.Equal(t, []string{"first", "second"}, m.Entries())

	entries := m.Entries()
	entries[0] = "changed"
	assert.Equal(t, "first", m.Entries()[0])
}
