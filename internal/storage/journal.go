package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
)

// Journal records the narration stream of one session. It implements
// colorsnake.NarrationSink, so it can sit next to the on-screen narrator.
type Journal struct {
	store   *Store
	session string
	logger  *log.Logger
}

// Journal returns a sink that writes events under the given session ID.
// Write failures are logged and otherwise ignored so a broken database
// never stalls the game.
func (s *Store) Journal(sessionID string, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Journal{store: s, session: sessionID, logger: logger}
}

// Narrate implements colorsnake.NarrationSink.
func (j *Journal) Narrate(e colorsnake.Event) {
	_, err := j.store.SaveEvent(EventRecord{
		SessionID:    j.session,
		GenerationID: e.Generation,
		Tick:         e.Tick,
		Kind:         e.Kind.String(),
		Color:        string(e.Color),
		Score:        e.Score,
		Message:      e.Message(),
	})
	if err != nil {
		j.logger.Error("journal write failed", "generation", e.Generation, "error", err)
	}
}

var _ colorsnake.NarrationSink = (*Journal)(nil)
