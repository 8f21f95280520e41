package util

import (
	"fmt"
	"strings"
)

// Lines accumulates generated source one line at a time. String joins the
// lines with "\n" and adds no trailing newline, so blocks compose by simple
// concatenation into a parent Lines.
type Lines struct {
	lines []string
}

// Add appends one formatted line.
func (l *Lines) Add(format string, args ...interface{}) {
	if len(args) == 0 {
		l.lines = append(l.lines, format)
		return
	}
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// AddBlock appends a multi-line block, prefixing each line with indent.
func (l *Lines) AddBlock(block, indent string) {
	for _, line := range strings.Split(block, "\n") {
		if line == "" {
			l.lines = append(l.lines, line)
			continue
		}
		l.lines = append(l.lines, indent+line)
	}
}

// Len returns the number of lines added so far.
func (l *Lines) Len() int {
	return len(l.lines)
}

func (l *Lines) String() string {
	return strings.Join(l.lines, "\n")
}
