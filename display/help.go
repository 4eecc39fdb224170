package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Headings are bold when the output stream is a terminal; fatih/color
// disables itself for piped output, so redirected help is plain text.
var bold = color.New(color.Bold)

// Group is the view of one parser node: the program path down to the node,
// its description and the names selectable beneath it.
type Group struct {
	Prog     string
	Desc     string
	Commands []string
}

// BuildUsage renders the usage block printed when no command, or an unknown
// command, was selected:
//
//	Usage: prog <command> [-h]
//
//	Test Application
//
//	Available Commands:
//	   hello
//	   return-non-zero
func BuildUsage(g Group) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s <command> [-h]\n\n", bold.Sprint("Usage:"), g.Prog)
	if g.Desc != "" {
		b.WriteString(g.Desc + "\n\n")
	}
	b.WriteString(bold.Sprint("Available Commands:") + "\n")
	for _, name := range g.Commands {
		b.WriteString("   " + name + "\n")
	}
	return b.String()
}

// Row is one entry of an argument or option table.
type Row struct{ Term, Help string }

// Command is the view of one leaf command: its display name, help header,
// usage tokens and argument tables.
type Command struct {
	Name      string
	Desc      string
	Usage     []string
	Arguments []Row
	Options   []Row
}

// CommandUsage renders the one-line usage summary for a command, e.g.
// "Usage: hello [-h] [--count COUNT] name".
func CommandUsage(c Command) string {
	parts := append([]string{"Usage:", c.Name}, c.Usage...)
	return strings.Join(parts, " ")
}

// BuildCommandHelp renders the full -h output for a command: the usage
// line, the help header, then the positional and optional argument tables.
// Help text wraps at width; callers obtain it from Width on the writer the
// output is destined for.
func BuildCommandHelp(c Command, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", bold.Sprint("Usage:"), c.Name)
	for _, tok := range c.Usage {
		b.WriteString(" " + tok)
	}
	b.WriteString("\n")
	if c.Desc != "" {
		b.WriteString("\n" + c.Desc + "\n")
	}
	if len(c.Arguments) > 0 {
		b.WriteString("\n" + bold.Sprint("Arguments:") + "\n")
		writeRows(&b, c.Arguments, width)
	}
	b.WriteString("\n" + bold.Sprint("Options:") + "\n")
	writeRows(&b, c.Options, width)
	return b.String()
}

// writeRows renders an aligned two-column table, wrapping the help column
// to the given total width.
func writeRows(b *strings.Builder, rows []Row, width int) {
	maxLen := 0
	for _, r := range rows {
		if len(r.Term) > maxLen {
			maxLen = len(r.Term)
		}
	}
	width = width - maxLen - 4
	for _, r := range rows {
		if r.Help == "" {
			b.WriteString("  " + r.Term + "\n")
			continue
		}
		lines := wrap(r.Help, width)
		pad := strings.Repeat(" ", maxLen-len(r.Term)+2)
		b.WriteString("  " + r.Term + pad + lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString(strings.Repeat(" ", maxLen+4) + line + "\n")
		}
	}
}

// Width reports the render width for w: the terminal width when w is a
// terminal, 80 when it is any other writer.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

// wrap greedily breaks s into lines no longer than width.
func wrap(s string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
