package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/typewriter/animator"
	"github.com/iw2rmb/typewriter/config"
)

const lineSeparator = "  │  "

// printer writes animator frames. On a terminal it rewrites one status line
// holding every animated line; otherwise it appends one record per change.
type printer struct {
	mu       sync.Mutex
	w        io.Writer
	out      *termenv.Output
	terminal bool
	texts    []string
	seen     []bool
}

func newPrinter(w io.Writer, lines int, terminal bool) *printer {
	return &printer{
		w:        w,
		out:      termenv.NewOutput(w),
		terminal: terminal,
		texts:    make([]string, lines),
		seen:     make([]bool, lines),
	}
}

func (p *printer) frame(line int, f animator.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.seen[line] && p.texts[line] == f.Text {
		return
	}
	p.seen[line] = true
	p.texts[line] = f.Text

	if p.terminal {
		p.out.ClearLine()
		fmt.Fprint(p.w, "\r"+strings.Join(p.texts, lineSeparator))
		return
	}
	if len(p.texts) == 1 {
		fmt.Fprintln(p.w, f.Text)
		return
	}
	fmt.Fprintf(p.w, "%d: %s\n", line, f.Text)
}

func (p *printer) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.terminal {
		fmt.Fprintln(p.w)
	}
}

// runPlain runs one animator per line until every line stops or ctx is done.
func runPlain(ctx context.Context, logger *slog.Logger, scene *config.Scene, p *printer) error {
	defer p.finish()

	g, ctx := errgroup.WithContext(ctx)
	for i, line := range scene.Lines {
		a := animator.New(line.EngineConfig(), animator.Options{
			Logger:  logger.With("line", i),
			OnFrame: func(f animator.Frame) { p.frame(i, f) },
		})
		g.Go(func() error { return a.Run(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
