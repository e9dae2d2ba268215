package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("battle")
	assert.Equal(t, "battle_1", g.Generate())
	assert.Equal(t, "battle_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestBattleIDsAreUnique(t *testing.T) {
	g := idgen.NewBattleID()
	a, b := g.Generate(), g.Generate()

	assert.True(t, strings.HasPrefix(a, "battle_"))
	assert.NotEqual(t, a, b)
}
