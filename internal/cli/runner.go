package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
}

// Runner dispatches subcommands against a single store.
type Runner struct {
	Store   *store.Store
	Printer *ui.Printer
	Log     *log.Logger
	Opt     Options

	// Stdin feeds `run -`.
	Stdin io.Reader
	// TUI starts the interactive list. Nil means it is unavailable.
	TUI func() error
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (r *Runner) Run(args []string) int {
	if len(args) == 0 {
		return r.doTUI()
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		r.PrintHelp()
		return 0

	case "tui":
		if len(a) != 0 {
			r.Printer.Fail("usage: todo tui")
			return 2
		}
		return r.doTUI()

	case "run":
		if len(a) > 1 {
			r.Printer.Fail("usage: todo run [file|-]")
			return 2
		}
		name := "-"
		if len(a) == 1 {
			name = a[0]
		}
		return r.doRun(name)
	}

	r.Printer.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(r.Printer.Err())
	r.PrintHelp()
	return 2
}

func (r *Runner) PrintHelp() {
	fmt.Fprint(r.Printer.Out(), `todo - a tiny in-memory todo list

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  tui                Interactive list (default)
  run [file|-]       Run a todo script from a file or stdin, then print the list
  help               Show this help

Script commands (one per line, # starts a comment):
  add <text...>        Add a new item (text can be multiple words)
  rm <index>           Remove item at 1-based index
  done <index>         Toggle done for item at 1-based index
  edit <index> <text>  Replace the text of item at 1-based index
  ls                   Print the list
  count                Print the number of pending items

Flags:
  -config <path>  -theme classic|neon|mono  -color auto|always|never  -group
  -log-level <level>  -log-format text|json|logfmt  -log-file <path>

Examples:
  printf 'add Buy milk\nadd Call mom\ndone 1\n' | todo run
  todo -group run today.todo
`)
}

// -------------- subcommand impls ----------------

func (r *Runner) doTUI() int {
	if r.TUI == nil {
		r.Printer.Fail("interactive mode is not available")
		return 1
	}
	if err := r.TUI(); err != nil {
		r.Printer.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func (r *Runner) doRun(name string) int {
	src := r.Stdin
	if src == nil {
		src = os.Stdin
	}
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			r.Printer.Fail("open: " + err.Error())
			return 1
		}
		defer f.Close()
		src = f
	}

	r.logger().Debug("running script", "source", name)
	code := r.Exec(src)
	if code == 0 {
		r.list()
		r.Printer.OK(fmt.Sprintf("%d pending", r.Store.Incomplete()))
	}
	return code
}

// Exec runs script lines from src until the first failure.
func (r *Runner) Exec(src io.Reader) int {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.exec(line); err != nil {
			r.Printer.Fail(fmt.Sprintf("line %d: %s", lineNo, err))
			if errors.Is(err, store.ErrIndexOutOfRange) {
				r.Printer.Hint("Hint: add `ls` to the script to see valid indexes")
			}
			return 2
		}
	}
	if err := sc.Err(); err != nil {
		r.Printer.Fail("read: " + err.Error())
		return 1
	}
	return 0
}

// exec applies one script command.
func (r *Runner) exec(line string) error {
	cmd, rest := splitWord(line)

	switch cmd {
	case "add":
		r.Store.Add(rest)
		return nil

	case "rm":
		idx, err := parseIndex("rm", rest)
		if err != nil {
			return err
		}
		return userIndex(r.Store.Remove(idx))

	case "done":
		idx, err := parseIndex("done", rest)
		if err != nil {
			return err
		}
		return userIndex(r.Store.Toggle(idx))

	case "edit":
		arg, text := splitWord(rest)
		idx, err := parseIndex("edit", arg)
		if err != nil {
			return err
		}
		return userIndex(r.Store.Edit(idx, text))

	case "ls":
		r.list()
		return nil

	case "count":
		fmt.Fprintln(r.Printer.Out(), r.Store.Incomplete())
		return nil
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

// splitWord splits off the first whitespace-delimited word.
func splitWord(s string) (word, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// parseIndex turns a 1-based user index into a store index.
func parseIndex(cmd, arg string) (int, error) {
	if arg == "" || strings.ContainsAny(arg, " \t") {
		return 0, fmt.Errorf("usage: %s <index>", cmd)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %s", cmd, arg)
	}
	return n - 1, nil
}

// userIndex reports out-of-range errors with the 1-based index the user typed.
func userIndex(err error) error {
	var ierr *store.IndexError
	if errors.As(err, &ierr) {
		return fmt.Errorf("%w: have %d, got %d", store.ErrIndexOutOfRange, ierr.Len, ierr.Index+1)
	}
	return err
}

func (r *Runner) list() {
	r.Printer.List(r.Store.Items(), r.Store.Incomplete(), r.Opt.Group)
}

func (r *Runner) logger() *log.Logger {
	if r.Log == nil {
		return log.New(io.Discard)
	}
	return r.Log
}
