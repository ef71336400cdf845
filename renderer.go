package argue

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/internal/util"
)

const (
	helpIndent    = "    "
	helpGap       = "    "
	minWrapColumn = 20
)

// DefaultRenderer formats the parts of a Parser's help text
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer creates a DefaultRenderer for parser
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// FlagUsage returns the flag column of a help entry: "--name, -s" or "--name"
func (r *DefaultRenderer) FlagUsage(f *Flag) string {
	if f.Short == "" {
		return "--" + f.Name
	}

	return "--" + f.Name + ", -" + f.Short
}

// ArgsUsage returns the argument column of the ARGS section. Required contracts are prefixed
// with '+', variadic ones suffixed with "...".
func (r *DefaultRenderer) ArgsUsage(a *ArgConfig) string {
	var sb strings.Builder
	if a.Required {
		sb.WriteByte('+')
	}
	sb.WriteString(a.Name)
	if a.Variadic {
		sb.WriteString("...")
	}

	return sb.String()
}

// Usage returns the synopsis line
func (r *DefaultRenderer) Usage(bin string) string {
	usage := r.parser.bundle.TL(r.parser.lang, errs.HelpUsageKey) + " " + bin + " [FLAGS]"
	if r.parser.args != nil {
		usage += " [ARGS]"
	}

	return usage
}

type helpEntry struct {
	usage       string
	description string
}

// PrintUsage writes the help text to w, using the base name of os.Args[0] as program name. Like
// Parse it panics with a *ContractError when the flag table is malformed.
func (p *Parser) PrintUsage(w io.Writer) {
	p.printUsage(w, programName(os.Args), validateFlags(p.flags))
}

func (p *Parser) printUsage(w io.Writer, bin string, table *flagTable) {
	r := NewRenderer(p)

	var args []helpEntry
	if p.args != nil {
		args = append(args, helpEntry{r.ArgsUsage(p.args), p.args.Description})
	}

	flags := make([]helpEntry, 0, len(p.flags)+1)
	table.each(func(f *Flag) {
		flags = append(flags, helpEntry{r.FlagUsage(f), f.Description})
	})
	flags = append(flags, helpEntry{"--help, -h", p.bundle.TL(p.lang, errs.HelpHelpFlagKey)})

	column := 0
	for _, e := range append(append([]helpEntry{}, args...), flags...) {
		if n := len([]rune(e.usage)); n > column {
			column = n
		}
	}

	wrapAt := 0
	if width := util.TerminalWidth(w); width > 0 {
		if avail := width - len(helpIndent) - column - len(helpGap); avail >= minWrapColumn {
			wrapAt = avail
		}
	}

	var sb strings.Builder
	if p.description != "" {
		sb.WriteString(p.description)
		sb.WriteString("\n\n")
	}
	sb.WriteString(r.Usage(bin))
	sb.WriteString("\n\n")

	if len(args) > 0 {
		sb.WriteString(util.Heading(w, p.bundle.TL(p.lang, errs.HelpArgsKey)))
		sb.WriteByte('\n')
		writeEntries(&sb, args, column, wrapAt)
		sb.WriteByte('\n')
	}

	sb.WriteString(util.Heading(w, p.bundle.TL(p.lang, errs.HelpFlagsKey)))
	sb.WriteByte('\n')
	writeEntries(&sb, flags, column, wrapAt)

	_, _ = fmt.Fprint(w, sb.String())
}

func writeEntries(sb *strings.Builder, entries []helpEntry, column, wrapAt int) {
	for _, e := range entries {
		if e.description == "" {
			sb.WriteString(helpIndent + e.usage + "\n")
			continue
		}

		lines := util.Wrap(e.description, wrapAt)
		sb.WriteString(helpIndent + util.PadRight(e.usage, column) + helpGap + lines[0] + "\n")
		pad := strings.Repeat(" ", len(helpIndent)+column+len(helpGap))
		for _, line := range lines[1:] {
			sb.WriteString(pad + line + "\n")
		}
	}
}
