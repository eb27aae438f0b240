package util

import (
	"fmt"
	"path/filepath"
	"strings"
)

const BLACK = "\033[0;0m"
const RED = "\033[0;31m"
const YELLOW = "\033[0;33m"
const BLUE = "\033[94m"
const GREEN = "\033[92m"

// Annotate renders msg against a zero-based row/column position in source, highlighting width
// bytes of the offending line and showing contextSize lines on either side. A negative
// contextSize produces the single-line "file:line:col: msg" form.
func Annotate(filename, source, prefix, msg string, row, col, width int, color string, contextSize int) string {
	name := "<input>"
	if filename != "" {
		name = filepath.Base(filename)
	}
	if source == "" || contextSize < 0 {
		return fmt.Sprintf("%s%s:%d:%d: %s", prefix, name, row+1, col+1, msg)
	}
	highlight := color + "\033[1m"
	restore := BLACK + "\033[0m"
	lines := strings.Split(source, "\n")
	begin := max(0, row-contextSize)
	end := min(len(lines), row+contextSize+1)
	var buf strings.Builder
	for i := begin; i < end; i++ {
		l := lines[i]
		if i == row && width > 0 && col < len(l) {
			stop := min(len(l), col+width)
			buf.WriteString(fmt.Sprintf("%3d\t%s", i+1, l[:col]))
			buf.WriteString(fmt.Sprintf("%s%s%s", highlight, l[col:stop], restore))
			buf.WriteString(fmt.Sprintf("%s\n", l[stop:]))
		} else {
			buf.WriteString(fmt.Sprintf("%3d\t%s\n", i+1, l))
		}
	}
	return fmt.Sprintf("%s%s:%d:%d: %s%s%s\n%s", prefix, name, row+1, col+1, highlight, msg, restore, buf.String())
}
