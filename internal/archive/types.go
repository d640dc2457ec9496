// Package archive parses exported Discord chat archives and aggregates
// message and call statistics from them.
package archive

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Optional is a JSON field that may be absent, null, or of an unexpected
// type. Decoding never fails; a missing or mismatched value leaves Set false.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Get returns the value and whether it was present with the expected type.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	*o = Optional[T]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	o.Value, o.Set = v, true
	return nil
}

// objectFields decodes a JSON object into its raw members keyed by their
// exact names. encoding/json matches struct tags case-insensitively, so the
// archive types look their members up here instead.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// lookup decodes the member named key into dst. A missing key leaves dst unset.
func lookup[T any](fields map[string]json.RawMessage, key string, dst *Optional[T]) {
	*dst = Optional[T]{}
	if raw, ok := fields[key]; ok {
		_ = dst.UnmarshalJSON(raw)
	}
}

// Archive is the top-level structure of an exported chat log.
type Archive struct {
	Messages Optional[[]Optional[Message]]
}

// UnmarshalJSON implements json.Unmarshaler. It fails when data is not an
// object.
func (a *Archive) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	lookup(fields, "messages", &a.Messages)
	return nil
}

// Message is a single archived message. Only the fields the statistics
// need are modelled; everything else in the export is ignored.
type Message struct {
	Author  Optional[Author]
	Content Optional[string]
}

// UnmarshalJSON implements json.Unmarshaler. It fails when data is not an
// object.
func (m *Message) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	lookup(fields, "author", &m.Author)
	lookup(fields, "content", &m.Content)
	return nil
}

// Author identifies the sender of a message.
type Author struct {
	Nickname Optional[string]
}

// UnmarshalJSON implements json.Unmarshaler. It fails when data is not an
// object.
func (a *Author) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	lookup(fields, "nickname", &a.Nickname)
	return nil
}

// Stats is the aggregate computed from one archive.
type Stats struct {
	// TotalMessages counts messages with a textual content field.
	TotalMessages int `json:"total_messages"`

	// MessagesPerAuthor maps author nickname to the number of messages
	// carrying that nickname.
	MessagesPerAuthor map[string]int `json:"messages_per_author"`

	// TotalCallMinutes is the sum of all detected call durations.
	TotalCallMinutes int `json:"total_call_minutes"`

	// LongestCallMinutes is the largest single call duration, 0 if none.
	LongestCallMinutes int `json:"longest_call_minutes"`

	// Calls is the number of messages that carried a call duration.
	Calls int `json:"calls"`
}

// Authors returns the author nicknames ordered by message count descending,
// ties broken alphabetically.
func (s Stats) Authors() []string {
	names := make([]string, 0, len(s.MessagesPerAuthor))
	for name := range s.MessagesPerAuthor {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := s.MessagesPerAuthor[names[i]], s.MessagesPerAuthor[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

func (s *Stats) addAuthor(nickname string) {
	s.MessagesPerAuthor[nickname]++
}

func (s *Stats) addCall(minutes int) {
	s.Calls++
	s.TotalCallMinutes += minutes
	if minutes > s.LongestCallMinutes {
		s.LongestCallMinutes = minutes
	}
}
