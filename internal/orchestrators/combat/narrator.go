package combat

import (
	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/combatlog"
)

// narrator collects what happened during one call, tagged with the round
// and actor for the combat log
type narrator struct {
	enc     *entities.Encounter
	entries []combatlog.Entry
}

func newNarrator(enc *entities.Encounter) *narrator {
	return &narrator{enc: enc}
}

func (n *narrator) say(actorID, message string) {
	n.entries = append(n.entries, combatlog.Entry{
		Round:   n.enc.Round,
		Actor:   actorID,
		Message: message,
	})
}

// messages returns the narrated lines in order
func (n *narrator) messages() []string {
	out := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		out = append(out, e.Message)
	}
	return out
}
