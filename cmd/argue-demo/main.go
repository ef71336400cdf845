package main

import (
	"fmt"
	"os"
	"time"

	"github.com/napalu/argue"
)

type Config struct {
	Foo     int
	Bar     float32
	Name    string
	Timeout time.Duration
	Since   time.Time
	Verbose bool
}

func main() {
	cfg := &Config{Name: "world", Timeout: 5 * time.Second}

	files, err := argue.Parse(os.Args, "some random description for this tool", []argue.Flag{
		{Name: "foo", Short: "f", Description: "a parser for foo", Bind: argue.Int(&cfg.Foo)},
		{Name: "bar", Description: "the bar", Bind: argue.Float(&cfg.Bar)},
		{Name: "name", Short: "n", Description: "who to greet", Bind: argue.String(&cfg.Name)},
		{Name: "timeout", Short: "t", Description: "how long to wait, e.g. 1m30s", Bind: argue.Duration(&cfg.Timeout)},
		{Name: "since", Description: "only consider files modified after this date", Bind: argue.Time(&cfg.Since)},
		{Name: "verbose", Short: "v", Description: "show detailed progress", Bind: argue.Switch(&cfg.Verbose)},
	}, &argue.ArgConfig{Name: "files", Description: "files to process", Variadic: true})
	if err != nil {
		os.Exit(argue.ExitCode(err))
	}

	fmt.Printf("hello %s: foo=%d bar=%g timeout=%s\n", cfg.Name, cfg.Foo, cfg.Bar, cfg.Timeout)
	if !cfg.Since.IsZero() {
		fmt.Printf("since %s\n", cfg.Since.Format(time.RFC3339))
	}
	for _, file := range files {
		if cfg.Verbose {
			fmt.Printf("processing file: %s\n", file)
		}
	}
}
