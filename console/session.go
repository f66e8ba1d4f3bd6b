// SPDX-License-Identifier: MIT

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mststep/engine"
)

// errQuit ends the read loop.
var errQuit = errors.New("quit")

// command is one interactive verb.
type command struct {
	names []string
	usage string
	run   func(s *Session, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{[]string{"next", "n"}, "process one edge (starts a paused run when idle)", (*Session).next},
		{[]string{"continue", "c"}, "run until the next breakpoint or the end", (*Session).cont},
		{[]string{"pause", "p"}, "pause at the next edge boundary", func(s *Session, _ []string) error { s.alg.Pause(); return nil }},
		{[]string{"reset", "r"}, "abandon the run and clear all markers", func(s *Session, _ []string) error { s.alg.Reset(); return nil }},
		{[]string{"start", "s"}, "reset, then start a new run", (*Session).start},
		{[]string{"state"}, "show the engine state and the last result", (*Session).state},
		{[]string{"help", "h", "?"}, "list commands", (*Session).help},
		{[]string{"quit", "q", "exit"}, "leave the session", func(*Session, []string) error { return errQuit }},
	}
}

// Session drives an engine.Algorithm from line commands.
type Session struct {
	alg         engine.Algorithm
	out         io.Writer
	in          io.ReadCloser
	log         logrus.FieldLogger
	prompt      string
	startPaused bool
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithInput reads commands from in instead of the terminal.
func WithInput(in io.ReadCloser) SessionOption { return func(s *Session) { s.in = in } }

// WithOutput writes command feedback to out.
func WithOutput(out io.Writer) SessionOption { return func(s *Session) { s.out = out } }

// WithSessionLogger sets the logger for command errors.
func WithSessionLogger(log logrus.FieldLogger) SessionOption {
	return func(s *Session) { s.log = log }
}

// WithStartPaused makes "start" open the run paused before the first edge.
func WithStartPaused(paused bool) SessionOption {
	return func(s *Session) { s.startPaused = paused }
}

// NewSession wraps alg.
func NewSession(alg engine.Algorithm, opts ...SessionOption) *Session {
	s := &Session{
		alg:         alg,
		out:         os.Stdout,
		log:         logrus.StandardLogger(),
		prompt:      strings.ToLower(alg.String()) + "> ",
		startPaused: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run reads commands until quit, EOF or ctx is done. The engine is reset on
// the way out so no worker outlives the session.
func (s *Session) Run(ctx context.Context) error {
	cfg := &readline.Config{
		Prompt:          s.prompt,
		Stdin:           s.in,
		Stdout:          s.out,
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	}
	if s.in != nil {
		// scripted input: leave the controlling terminal alone
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncGetWidth = func() int { return 80 }
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer s.alg.Reset()

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return s.readLoop(rl)
	})
	eg.Go(func() error {
		<-ctx.Done()
		return rl.Close()
	})

	return eg.Wait()
}

func (s *Session) readLoop(rl *readline.Instance) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		if err = s.Exec(line); errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			s.log.WithError(err).Warn("command failed")
			_, _ = fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Exec runs one command line. The quit command returns an error for which
// IsQuit reports true; unknown commands are errors too.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}
	for _, c := range commands {
		for _, name := range c.names {
			if name == fields[0] {
				return c.run(s, fields[1:])
			}
		}
	}

	return fmt.Errorf("unknown command %q, try help", fields[0])
}

// IsQuit reports whether err came from the quit command.
func IsQuit(err error) bool { return errors.Is(err, errQuit) }

func (s *Session) next(_ []string) error {
	if s.alg.State() == engine.StateIdle {
		return s.alg.StartAlgorithm(true)
	}
	s.alg.Step()

	return nil
}

func (s *Session) cont(_ []string) error {
	if s.alg.State() == engine.StateIdle {
		return s.alg.StartAlgorithm(false)
	}
	s.alg.Resume()

	return nil
}

func (s *Session) start(_ []string) error {
	s.alg.Reset()
	return s.alg.StartAlgorithm(s.startPaused)
}

func (s *Session) state(_ []string) error {
	st := s.alg.State()
	_, _ = fmt.Fprintf(s.out, "%s %s\n", s.alg, st)
	if res := s.alg.Result(); res != nil {
		_, _ = fmt.Fprintln(s.out, res)
	}

	return nil
}

func (s *Session) help(_ []string) error {
	for _, c := range commands {
		_, _ = fmt.Fprintf(s.out, "  %-20s %s\n", strings.Join(c.names, "|"), c.usage)
	}

	return nil
}

func (s *Session) completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		items = append(items, readline.PcItem(c.names[0]))
	}

	return readline.NewPrefixCompleter(items...)
}
