package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trivia-quest/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("weapon")
	assert.Equal(t, "weapon_1", g.Generate())
	assert.Equal(t, "weapon_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	g := idgen.NewUUID("relic")
	a, b := g.Generate(), g.Generate()

	require.True(t, strings.HasPrefix(a, "relic_"))
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "ids sort by creation order")

	parsed, err := uuid.Parse(strings.TrimPrefix(a, "relic_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
