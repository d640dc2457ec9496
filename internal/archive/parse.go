package archive

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
)

// ParseFile reads the archive at path and computes its statistics.
// A read failure is returned as a *ReadError.
func ParseFile(path string) (Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, &ReadError{Path: path, Err: err}
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("read archive")

	stats, err := Parse(data)
	if err != nil {
		return Stats{}, err
	}
	log.Debug().
		Int("messages", stats.TotalMessages).
		Int("authors", len(stats.MessagesPerAuthor)).
		Int("calls", stats.Calls).
		Msg("parsed archive")
	return stats, nil
}

// Parse computes statistics from archive text. It fails only when data is
// not valid JSON. A document without a "messages" array is treated as an
// archive with no messages, and malformed fields on individual messages are
// skipped.
func Parse(data []byte) (Stats, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Stats{}, newFormatError(err)
	}

	var root Optional[Archive]
	if err := json.Unmarshal(raw, &root); err != nil {
		return Stats{}, newFormatError(err)
	}

	stats := Stats{MessagesPerAuthor: make(map[string]int)}
	messages, _ := root.Value.Messages.Get()
	for _, m := range messages {
		msg, ok := m.Get()
		if !ok {
			continue
		}

		if author, ok := msg.Author.Get(); ok {
			if nickname, ok := author.Nickname.Get(); ok {
				stats.addAuthor(nickname)
			}
		}

		content, ok := msg.Content.Get()
		if !ok {
			continue
		}
		stats.TotalMessages++
		if minutes, ok := ExtractCallDuration(content); ok {
			stats.addCall(minutes)
		}
	}
	return stats, nil
}
