package argue

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRenderer_FlagUsage(t *testing.T) {
	r := NewRenderer(&Parser{})

	assert.Equal(t, "--numi, -n", r.FlagUsage(&Flag{Name: "numi", Short: "n"}))
	assert.Equal(t, "--boolean", r.FlagUsage(&Flag{Name: "boolean"}))
}

func TestDefaultRenderer_ArgsUsage(t *testing.T) {
	r := NewRenderer(&Parser{})

	tests := []struct {
		args *ArgConfig
		want string
	}{
		{&ArgConfig{Name: "file"}, "file"},
		{&ArgConfig{Name: "file", Required: true}, "+file"},
		{&ArgConfig{Name: "files", Variadic: true}, "files..."},
		{&ArgConfig{Name: "files", Required: true, Variadic: true}, "+files..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ArgsUsage(tt.args))
	}
}

func TestParser_PrintUsage(t *testing.T) {
	var d testDestinations
	flags := []Flag{
		{Name: "numi", Short: "n", Description: "an integer", Bind: Int(&d.numi)},
		{Name: "boolean", Description: "a switch", Bind: Switch(&d.boolean)},
	}
	p, stdout, _ := newTestParser(t, flags, &ArgConfig{
		Name:        "files",
		Description: "input files",
		Required:    true,
		Variadic:    true,
	})

	_, err := p.Parse([]string{"/opt/prog"})
	require.ErrorIs(t, err, ErrHelp)

	want := strings.Join([]string{
		"argue test",
		"",
		"USAGE: prog [FLAGS] [ARGS]",
		"",
		"ARGS:",
		"    +files...     input files",
		"",
		"FLAGS:",
		"    --numi, -n    an integer",
		"    --boolean     a switch",
		"    --help, -h    Prints help information",
		"",
	}, "\n")
	assert.Equal(t, want, stdout.String())
}

func TestParser_PrintUsageWithoutContract(t *testing.T) {
	var quiet bool
	stdout := &bytes.Buffer{}
	p, err := NewParser(
		WithFlag("quiet", "", "", Switch(&quiet)),
		WithFlag("a-much-longer-name", "l", "aligned", Switch(&quiet)),
	)
	require.NoError(t, err)

	p.PrintUsage(stdout)
	out := stdout.String()

	assert.Contains(t, out, " [FLAGS]\n")
	assert.NotContains(t, out, "[ARGS]")
	assert.NotContains(t, out, "ARGS:")
	assert.Contains(t, out, "    --quiet\n", "an entry without description has no trailing spaces")
	assert.Contains(t, out, "    --a-much-longer-name, -l    aligned\n")
	assert.Contains(t, out, "    --help, -h                  Prints help information\n")
	assert.False(t, strings.HasPrefix(out, "\n"), "no leading blank line without description")
}

func TestWriteEntries_Wrap(t *testing.T) {
	var sb strings.Builder
	writeEntries(&sb, []helpEntry{{"--x", "one two three four"}}, 3, 10)

	assert.Equal(t, "    --x    one two\n           three four\n", sb.String())
}
