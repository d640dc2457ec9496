package archive

import (
	"strconv"
	"strings"
)

const (
	callMarker     = "Started a call that lasted "
	callTerminator = " minutes."
)

// ExtractCallDuration returns the call length in minutes announced by a
// "Started a call that lasted N minutes." sentence anywhere in content.
// The payload is parsed as a signed 32-bit integer, but negative values are
// rejected along with the malformed cases so that every duration is >= 0 and
// the call total can never fall below the longest call. The second result
// is false when the sentence is absent, unterminated, its payload is not an
// integer, or the integer is negative.
func ExtractCallDuration(content string) (int, bool) {
	start := strings.Index(content, callMarker)
	if start < 0 {
		return 0, false
	}
	rest := content[start+len(callMarker):]

	end := strings.Index(rest, callTerminator)
	if end < 0 {
		return 0, false
	}

	minutes, err := strconv.ParseInt(rest[:end], 10, 32)
	if err != nil || minutes < 0 {
		return 0, false
	}
	return int(minutes), true
}
