package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/discordstats/internal/archive"
	"github.com/blackwell-systems/discordstats/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArchive = `{
	"guild": {"id": "0", "name": "Direct Messages"},
	"channel": {"id": "1", "type": "DirectTextChat"},
	"messages": [
		{"id": "1", "content": "Started a call that lasted 100 minutes.", "author": {"nickname": "alec"}},
		{"id": "2", "content": "hi", "author": {"nickname": "alec"}},
		{"id": "3", "content": "hello", "author": {"nickname": "alec"}},
		{"id": "4", "content": "Started a call that lasted 25 minutes.", "author": {"nickname": "ariel"}},
		{"id": "5", "content": "bye", "author": {"nickname": "ariel"}, "attachments": []}
	]
}`

// writeArchive writes data to a temp archive file and returns its path.
func writeArchive(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

// runCommand executes the root command with args against an isolated
// config file and returns what it wrote to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagJSON, flagNoColor, flagVerbose, flagConfig = false, false, false, ""

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAuthorsCmd_Registered(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "authors" {
			return
		}
	}
	t.Fatal("authors subcommand not registered on rootCmd")
}

func TestReport_Text(t *testing.T) {
	path := writeArchive(t, sampleArchive)

	out, err := runCommand(t, path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Total Messages: 5",
		"alec: 3",
		"ariel: 2",
		"alec sent 20.00% more messages than ariel!",
		"Total Call Time: 2 hours and 5 minutes",
		"Longest Call Was: 1 hours and 40 minutes",
	}, "\n")+"\n", out)
}

func TestReport_MatchesReportLines(t *testing.T) {
	path := writeArchive(t, sampleArchive)
	stats, err := archive.ParseFile(path)
	require.NoError(t, err)

	out, err := runCommand(t, path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(report.Build(stats).Lines(), "\n")+"\n", out)
}

func TestReport_JSON(t *testing.T) {
	path := writeArchive(t, sampleArchive)

	out, err := runCommand(t, "--json", path)
	require.NoError(t, err)

	var got report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got.Stats.TotalMessages)
	assert.Equal(t, 125, got.Stats.TotalCallMinutes)
	assert.Equal(t, 100, got.Stats.LongestCallMinutes)
	assert.Equal(t, "2 hours and 5 minutes", got.TotalCall)
	require.NotNil(t, got.Comparison)
	assert.Equal(t, "alec", got.Comparison.More)
}

func TestReport_ArchiveFromConfig(t *testing.T) {
	path := writeArchive(t, `{"messages": [{"content": "x", "author": {"nickname": "solo"}}]}`)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("archive: "+path+"\n"), 0o644))

	flagJSON, flagNoColor, flagVerbose = false, false, false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", cfgPath, "--no-color"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "solo: 1")
}

func TestReport_MissingArchive(t *testing.T) {
	out, err := runCommand(t, filepath.Join(t.TempDir(), "nope.json"))
	var re *archive.ReadError
	require.ErrorAs(t, err, &re)
	assert.Empty(t, out)
}

func TestReport_InvalidArchive(t *testing.T) {
	path := writeArchive(t, "{not json")

	out, err := runCommand(t, path)
	var fe *archive.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Empty(t, out)
}

func TestAuthors_Table(t *testing.T) {
	path := writeArchive(t, sampleArchive)

	out, err := runCommand(t, "authors", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Authors")
	assert.Contains(t, out, "alec")
	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, "40.0%")
	assert.Contains(t, out, "alec sent 20.00% more messages than ariel!")
	assert.Less(t, strings.Index(out, "alec"), strings.Index(out, "ariel"))
}

func TestAuthors_JSON(t *testing.T) {
	path := writeArchive(t, sampleArchive)

	out, err := runCommand(t, "authors", "--json", path)
	require.NoError(t, err)

	var shares []report.Share
	require.NoError(t, json.Unmarshal([]byte(out), &shares))
	require.Len(t, shares, 2)
	assert.Equal(t, "alec", shares[0].Author)
	assert.InDelta(t, 60.0, shares[0].Percent, 1e-9)
}

func TestAuthors_Empty(t *testing.T) {
	path := writeArchive(t, `{"messages": []}`)

	out, err := runCommand(t, "authors", path)
	require.NoError(t, err)
	assert.Equal(t, "No authored messages found in archive.\n", out)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestAuthors_WriteError(t *testing.T) {
	path := writeArchive(t, sampleArchive)
	flagJSON, flagNoColor, flagVerbose, flagConfig = false, false, false, ""

	rootCmd.SetOut(failingWriter{})
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "--no-color", "authors", path})
	assert.EqualError(t, rootCmd.Execute(), "disk full")
}

func TestReport_WriteError(t *testing.T) {
	err := renderReport(failingWriter{}, report.Build(archive.Stats{}))
	assert.EqualError(t, err, "disk full")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}
