package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tarot-arcade/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.False(t, Exists("missing"))

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	// each Create returns a fresh instance
	g.Step(core.NewInputFrame())
	g2, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, 0, g2.State().Score)

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "aa_stub")

	_, err = Create("missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	assert.Panics(t, func() {
		Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	})
}
