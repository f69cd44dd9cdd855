package blueprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/latch/pkg/blueprint"
)

const turnstileYAML = `
initial: locked
states: [locked, unlocked]
events: [push, insert_coin]
transitions:
  - {from: locked, on: insert_coin, to: unlocked, action: announce}
  - {from: unlocked, on: push, to: locked, action: announce}
`

func TestParse(t *testing.T) {
	def, err := blueprint.Parse([]byte(turnstileYAML))
	require.NoError(t, err)

	assert.Equal(t, "locked", def.Initial)
	assert.Equal(t, []string{"locked", "unlocked"}, def.States)
	assert.Equal(t, []string{"push", "insert_coin"}, def.Events)
	require.Len(t, def.Transitions, 2)
	assert.Equal(t, blueprint.RuleDef{From: "locked", On: "insert_coin", To: "unlocked", Action: "announce"}, def.Transitions[0])
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"Malformed YAML", "initial: [unclosed"},
		{"Unknown Field", "initial: a\nstates: [a]\nevents: [e]\nguards: []"},
		{"No States", "initial: a\nevents: [e]"},
		{"No Events", "initial: a\nstates: [a]"},
		{"No Initial", "states: [a]\nevents: [e]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := blueprint.Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuild_Turnstile(t *testing.T) {
	def, err := blueprint.Parse([]byte(turnstileYAML))
	require.NoError(t, err)

	var announced []string
	actions := map[string]blueprint.Action{
		"announce": func(from, event blueprint.Symbol) {
			announced = append(announced, from.Name()+"+"+event.Name())
		},
	}

	m, err := blueprint.Build(def, actions)
	require.NoError(t, err)
	assert.Equal(t, "locked", m.Current().Name())

	require.NoError(t, m.OnEvent("insert_coin"))
	assert.Equal(t, "unlocked", m.Current().Name())

	require.NoError(t, m.OnEvent("push"))
	assert.Equal(t, "locked", m.Current().Name())

	// Known event, no rule from the current state: silent no-op.
	require.NoError(t, m.OnEvent("push"))
	assert.Equal(t, "locked", m.Current().Name())

	assert.Equal(t, []string{"locked+insert_coin", "unlocked+push"}, announced)

	// Unknown event names are a caller error, not a dispatch no-op.
	assert.Error(t, m.OnEvent("kick"))
}

func TestBuild_Errors(t *testing.T) {
	base := func() *blueprint.Definition {
		return &blueprint.Definition{
			Initial: "a",
			States:  []string{"a", "b"},
			Events:  []string{"go"},
			Transitions: []blueprint.RuleDef{
				{From: "a", On: "go", To: "b"},
			},
		}
	}

	t.Run("Unknown Initial", func(t *testing.T) {
		def := base()
		def.Initial = "missing"
		_, err := blueprint.Build(def, nil)
		assert.ErrorContains(t, err, "initial state")
	})

	t.Run("Duplicate State Names", func(t *testing.T) {
		def := base()
		def.States = []string{"a", "a"}
		_, err := blueprint.Build(def, nil)
		assert.ErrorContains(t, err, "duplicate state")
	})

	t.Run("Unknown From State", func(t *testing.T) {
		def := base()
		def.Transitions[0].From = "missing"
		_, err := blueprint.Build(def, nil)
		assert.ErrorContains(t, err, "unknown state")
	})

	t.Run("Unknown Event", func(t *testing.T) {
		def := base()
		def.Transitions[0].On = "missing"
		_, err := blueprint.Build(def, nil)
		assert.ErrorContains(t, err, "unknown event")
	})

	t.Run("Unknown Action", func(t *testing.T) {
		def := base()
		def.Transitions[0].Action = "boom"
		_, err := blueprint.Build(def, nil)
		assert.ErrorContains(t, err, "unknown action")
	})
}

func TestBuild_DuplicateRowsLastWins(t *testing.T) {
	def := &blueprint.Definition{
		Initial: "a",
		States:  []string{"a", "b", "c"},
		Events:  []string{"go"},
		Transitions: []blueprint.RuleDef{
			{From: "a", On: "go", To: "b"},
			{From: "a", On: "go", To: "c"},
		},
	}

	m, err := blueprint.Build(def, nil)
	require.NoError(t, err)

	require.NoError(t, m.OnEvent("go"))
	assert.Equal(t, "c", m.Current().Name())
}

func TestVocabulary(t *testing.T) {
	v := blueprint.NewVocabulary("red", "amber", "green")

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"red", "amber", "green"}, v.Names())

	amber, ok := v.Lookup("amber")
	require.True(t, ok)
	assert.Equal(t, 1, amber.Tag())
	assert.Equal(t, 2, amber.MaxTag())
	assert.Equal(t, "amber", amber.String())

	_, ok = v.Lookup("blue")
	assert.False(t, ok)
}
