package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewIDIsRandomV4(t *testing.T) {
	g := New()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		id := g.NewID()
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.False(t, seen[id], "duplicate id generated")
		seen[id] = true
	}
}
