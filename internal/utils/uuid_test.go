package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	assert.NotEqual(t, a, b)
	assert.True(t, IsUUID(a))

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestIsUUID(t *testing.T) {
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("alarm-1"))
	assert.True(t, IsUUID(uuid.NewString()))
}
