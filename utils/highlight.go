package utils

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightSwift renders Swift source with terminal syntax highlighting for
// verbose bundle previews. On any highlighting failure the raw text is
// returned unchanged; a preview must never fail the run.
func HighlightSwift(source string, theme string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, "swift", "terminal256", theme); err != nil {
		return source
	}
	return buf.String()
}

// PrintHighlighted writes highlighted Swift source to stdout.
func PrintHighlighted(source string, theme string) {
	fmt.Print(HighlightSwift(source, theme))
}
