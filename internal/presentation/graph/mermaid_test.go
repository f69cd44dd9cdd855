package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/latch/internal/presentation/graph"
	"github.com/aretw0/latch/pkg/blueprint"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		def      *blueprint.Definition
		contains []string
	}{
		{
			name: "Initial Marker",
			def: &blueprint.Definition{
				Initial: "locked",
				States:  []string{"locked", "unlocked"},
			},
			contains: []string{
				"stateDiagram-v2",
				"[*] --> locked",
			},
		},
		{
			name: "Transition Labels",
			def: &blueprint.Definition{
				Initial: "locked",
				States:  []string{"locked", "unlocked"},
				Events:  []string{"push", "insert_coin"},
				Transitions: []blueprint.RuleDef{
					{From: "locked", On: "insert_coin", To: "unlocked", Action: "announce"},
					{From: "unlocked", On: "push", To: "locked"},
				},
			},
			contains: []string{
				"locked --> unlocked: insert_coin / announce",
				"unlocked --> locked: push",
			},
		},
		{
			name: "ID Sanitization",
			def: &blueprint.Definition{
				Initial: "in-flight",
				States:  []string{"in-flight", "at rest"},
				Transitions: []blueprint.RuleDef{
					{From: "in-flight", On: "land", To: "at rest"},
				},
			},
			contains: []string{
				"in_flight: in-flight",
				"at_rest: at rest",
				"[*] --> in_flight",
				"in_flight --> at_rest: land",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output := graph.GenerateMermaid(tc.def)
			for _, want := range tc.contains {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q\ngot:\n%s", want, output)
				}
			}
		})
	}
}
