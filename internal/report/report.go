// Package report turns archive statistics into human-readable summaries.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/blackwell-systems/discordstats/internal/archive"
)

// Report is the printable summary of one archive.
type Report struct {
	Stats       archive.Stats `json:"stats"`
	Comparison  *Comparison   `json:"comparison,omitempty"`
	TotalCall   string        `json:"total_call_time"`
	LongestCall string        `json:"longest_call"`
}

// Comparison describes how much more one of exactly two authors wrote.
type Comparison struct {
	More string `json:"more"`
	Less string `json:"less"`

	// Diff is the gap between the two authors' shares, in percentage points.
	Diff float64 `json:"diff_percent"`
}

// String renders the comparison sentence.
func (c Comparison) String() string {
	return fmt.Sprintf("%s sent %.2f%% more messages than %s!", c.More, c.Diff, c.Less)
}

// Share is one author's portion of all attributed messages.
type Share struct {
	Author   string  `json:"author"`
	Messages int     `json:"messages"`
	Percent  float64 `json:"percent"`
}

// FormatDuration renders minutes as "H hours and M minutes".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d hours and %d minutes", minutes/60, minutes%60)
}

// Compare returns the comparison between the two authors in counts. It
// reports false when there are not exactly two authors, when neither wrote
// anything, or when both wrote the same amount.
func Compare(counts map[string]int) (Comparison, bool) {
	if len(counts) != 2 {
		return Comparison{}, false
	}

	var names [2]string
	var values [2]int
	i := 0
	for name, count := range counts {
		names[i], values[i] = name, count
		i++
	}

	total := values[0] + values[1]
	if total <= 0 || values[0] == values[1] {
		return Comparison{}, false
	}

	p0 := float64(values[0]) / float64(total) * 100
	p1 := float64(values[1]) / float64(total) * 100
	c := Comparison{Diff: math.Abs(p0 - p1)}
	if values[0] > values[1] {
		c.More, c.Less = names[0], names[1]
	} else {
		c.More, c.Less = names[1], names[0]
	}
	return c, true
}

// Build assembles the report for stats.
func Build(stats archive.Stats) Report {
	r := Report{
		Stats:       stats,
		TotalCall:   FormatDuration(stats.TotalCallMinutes),
		LongestCall: FormatDuration(stats.LongestCallMinutes),
	}
	if c, ok := Compare(stats.MessagesPerAuthor); ok {
		r.Comparison = &c
	}
	return r
}

// Line is one entry of the printed report. Label is empty for free-standing
// sentences such as the comparison.
type Line struct {
	Label string
	Value string
}

// String renders the line as plain text.
func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// Entries returns the report layout, authors ordered by message count.
func (r Report) Entries() []Line {
	authors := r.Stats.Authors()
	entries := make([]Line, 0, len(authors)+4)

	entries = append(entries, Line{"Total Messages", strconv.Itoa(r.Stats.TotalMessages)})
	for _, name := range authors {
		entries = append(entries, Line{name, strconv.Itoa(r.Stats.MessagesPerAuthor[name])})
	}
	if r.Comparison != nil {
		entries = append(entries, Line{Value: r.Comparison.String()})
	}
	entries = append(entries,
		Line{"Total Call Time", r.TotalCall},
		Line{"Longest Call Was", r.LongestCall},
	)
	return entries
}

// Lines returns the plain-text rendition of Entries.
func (r Report) Lines() []string {
	entries := r.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// AuthorShares returns each author's share of attributed messages, in
// Stats.Authors order.
func AuthorShares(stats archive.Stats) []Share {
	total := 0
	for _, count := range stats.MessagesPerAuthor {
		total += count
	}

	authors := stats.Authors()
	shares := make([]Share, 0, len(authors))
	for _, name := range authors {
		s := Share{Author: name, Messages: stats.MessagesPerAuthor[name]}
		if total > 0 {
			s.Percent = float64(s.Messages) / float64(total) * 100
		}
		shares = append(shares, s)
	}
	return shares
}
