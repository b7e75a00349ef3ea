// Command kanjiwrite inspects glyph assets and checks handwritten words
// against them.
//
// Usage:
//
//	kanjiwrite inspect -glyphs FILE [CHARS]
//	kanjiwrite svg     -glyphs FILE -word W [-out FILE]
//	kanjiwrite render  -glyphs FILE -word W [-size PX] [-out FILE|-]
//	kanjiwrite check   -glyphs FILE -word W [-words FILE] [-in FILE|-]
//
// The check command reads a drawing as JSON, one array of [x, y] points per
// stroke, and prints the words closest to it followed by the verdict.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/kanjicards/recognition"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var errUsage = errors.New("usage")

// env holds the standard streams of one invocation.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	run   func(e *env, args []string) error
	usage string
}

var commands = map[string]command{
	"inspect": {runInspect, "print stroke and segment counts of glyphs"},
	"svg":     {runSVG, "write the strokes of a word as an SVG document"},
	"render":  {runRender, "rasterize the strokes of a word to PNG"},
	"check":   {runCheck, "check a drawing of a word"},
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "kanjiwrite: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	if len(args) == 0 {
		e.usage()
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		e.usage()
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	return cmd.run(e, args[1:])
}

func (e *env) usage() {
	fmt.Fprintln(e.stderr, "usage: kanjiwrite <command> [flags]")
	fmt.Fprintln(e.stderr)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(e.stderr, "  %-8s %s\n", name, commands[name].usage)
	}
}

// commonFlags are accepted by every command.
type commonFlags struct {
	glyphs  string
	verbose bool
}

func (e *env) flagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	cf := &commonFlags{}
	fs.StringVar(&cf.glyphs, "glyphs", "", "Glyph asset file")
	fs.BoolVar(&cf.verbose, "v", false, "Log debug output")
	return fs, cf
}

// load sets up logging and reads the glyph asset.
func (e *env) load(cf *commonFlags) (*recognition.GlyphStore, error) {
	level := slog.LevelInfo
	if cf.verbose {
		level = slog.LevelDebug
	}
	recognition.SetLogger(slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level})))

	if cf.glyphs == "" {
		return nil, fmt.Errorf("missing -glyphs: %w", errUsage)
	}
	return recognition.LoadGlyphs(cf.glyphs)
}

// parse parses args and loads the glyph asset. Commands that need a word
// pass a non-nil word.
func (e *env) parse(fs *flag.FlagSet, cf *commonFlags, args []string, word *string) (*recognition.GlyphStore, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if word != nil && *word == "" {
		fs.Usage()
		return nil, fmt.Errorf("missing -word: %w", errUsage)
	}
	return e.load(cf)
}

// output returns the destination for path. Binary output is refused when
// it would go to a terminal.
func (e *env) output(path string, binary bool) (io.Writer, func() error, error) {
	if path == pipeName {
		if f, ok := e.stdout.(*os.File); ok && binary && term.IsTerminal(int(f.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return e.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, f.Close, nil
}

// writeOutput runs write on the destination for path and closes it. Errors
// from writing and closing are both reported.
func (e *env) writeOutput(path string, binary bool, write func(io.Writer) error) error {
	w, closeOut, err := e.output(path, binary)
	if err != nil {
		return err
	}
	return errors.Join(write(w), closeOut())
}

// input returns the source for path.
func (e *env) input(path string) (io.Reader, func() error, error) {
	if path == pipeName {
		if f, ok := e.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return e.stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, f.Close, nil
}
