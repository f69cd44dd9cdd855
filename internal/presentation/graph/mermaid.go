package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/latch/pkg/blueprint"
)

// GenerateMermaid produces a Mermaid stateDiagram-v2 string from a machine
// definition. The initial state gets the [*] entry marker, and every
// transition is labelled with its triggering event (and action name when one
// is bound, in "event / action" form).
func GenerateMermaid(def *blueprint.Definition) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	// Declare states up front so isolated states still render, keeping the
	// display label when sanitization changed the identifier.
	for _, state := range def.States {
		safeID := sanitizeMermaidID(state)
		if safeID != state {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", safeID, state))
		} else {
			sb.WriteString(fmt.Sprintf("    %s\n", safeID))
		}
	}

	if def.Initial != "" {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(def.Initial)))
	}

	for _, t := range def.Transitions {
		label := t.On
		if t.Action != "" {
			label = fmt.Sprintf("%s / %s", t.On, t.Action)
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n",
			sanitizeMermaidID(t.From), sanitizeMermaidID(t.To), label))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
