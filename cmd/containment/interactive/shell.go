// Package interactive provides the line-oriented shell behind
// `containment shell`.
package interactive

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"containment/internal/domain"
	"containment/internal/input"
	"containment/internal/volume"
)

// Shell accumulates motes and devices and solves them on demand.
type Shell struct {
	runs  domain.RunService
	limit int
	out   io.Writer

	problem domain.Problem
}

// New returns a Shell that solves through runs. limit caps the number of
// motes and of devices (0 selects the input default).
func New(runs domain.RunService, limit int) *Shell {
	if limit <= 0 {
		limit = input.DefaultMaxEntities
	}
	return &Shell{runs: runs, limit: limit, out: os.Stdout}
}

// SetOutput redirects command output, e.g. to a test buffer.
func (s *Shell) SetOutput(w io.Writer) { s.out = w }

// Problem returns the problem built so far.
func (s *Shell) Problem() domain.Problem { return s.problem }

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "containment> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()
	s.out = rl.Stdout()

	s.printHelp()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if quit := s.Exec(ctx, line); quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "mote", "m":
		s.cmdMote(args)
	case "device", "d":
		s.cmdDevice(args)
	case "load":
		s.cmdLoad(args)
	case "list", "ls":
		s.cmdList()
	case "solve", "s":
		s.cmdSolve(ctx, false)
	case "save":
		s.cmdSolve(ctx, true)
	case "reset", "clear":
		s.problem = domain.Problem{}
		fmt.Fprintln(s.out, "cleared")
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  mote R [R...]       add motes with radius R
  device L W H        add a device
  load FILE           replace the problem with FILE (text, .yaml or .json)
  list                show motes and devices with their volumes
  solve               print the uncontained volume and assignments
  save                solve and store the report
  reset               drop all motes and devices
  quit                leave the shell
`)
}

func (s *Shell) cmdMote(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "usage: mote R [R...]")
		return
	}
	radii := make([]int, 0, len(args))
	for _, a := range args {
		r, err := parseNonNegative(a)
		if err != nil {
			fmt.Fprintf(s.out, "radius %q: %v\n", a, err)
			return
		}
		radii = append(radii, r)
	}
	if len(s.problem.Motes)+len(radii) > s.limit {
		fmt.Fprintf(s.out, "too many motes (limit %d)\n", s.limit)
		return
	}
	for _, r := range radii {
		s.problem.Motes = append(s.problem.Motes, domain.Mote{Radius: r})
	}
	fmt.Fprintf(s.out, "%d motes\n", len(s.problem.Motes))
}

func (s *Shell) cmdDevice(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(s.out, "usage: device L W H")
		return
	}
	var dims [3]int
	for i, a := range args {
		v, err := parseNonNegative(a)
		if err != nil {
			fmt.Fprintf(s.out, "dimension %q: %v\n", a, err)
			return
		}
		dims[i] = v
	}
	if len(s.problem.Devices) >= s.limit {
		fmt.Fprintf(s.out, "too many devices (limit %d)\n", s.limit)
		return
	}
	s.problem.Devices = append(s.problem.Devices, domain.Device{Length: dims[0], Width: dims[1], Height: dims[2]})
	fmt.Fprintf(s.out, "%d devices\n", len(s.problem.Devices))
}

func (s *Shell) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: load FILE")
		return
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "load: %v\n", err)
		return
	}
	defer f.Close()

	p, err := input.Read(f, input.DetectFormat(args[0]), s.limit)
	if err != nil {
		fmt.Fprintf(s.out, "load: %v\n", err)
		return
	}
	s.problem = p
	fmt.Fprintf(s.out, "loaded %d motes, %d devices\n", len(p.Motes), len(p.Devices))
}

func (s *Shell) cmdList() {
	fmt.Fprintf(s.out, "Motes (%d):\n", len(s.problem.Motes))
	for i, m := range s.problem.Motes {
		fmt.Fprintf(s.out, "  [%d] r=%d  volume=%.6f\n", i, m.Radius, volume.MoteVolume(m.Radius))
	}
	fmt.Fprintf(s.out, "Devices (%d):\n", len(s.problem.Devices))
	for i, d := range s.problem.Devices {
		fmt.Fprintf(s.out, "  [%d] %dx%dx%d  volume=%.6f\n", i, d.Length, d.Width, d.Height,
			volume.DeviceVolume(d.Length, d.Width, d.Height))
	}
}

func (s *Shell) cmdSolve(ctx context.Context, save bool) {
	rep, err := s.runs.Run(ctx, s.problem, domain.RunOptions{Save: save})
	if err != nil {
		fmt.Fprintf(s.out, "solve: %v\n", err)
		return
	}
	for _, a := range rep.Result.Assignments {
		fmt.Fprintf(s.out, "  mote %d -> device %d  (%.6f <= %.6f)\n", a.Mote, a.Device, a.MoteVolume, a.DeviceVolume)
	}
	for _, m := range rep.Result.Unplaced {
		fmt.Fprintf(s.out, "  mote %d uncontained\n", m)
	}
	fmt.Fprintf(s.out, "uncontained: %.6f\n", rep.Result.Uncontained)
	if save {
		fmt.Fprintf(s.out, "saved report %s\n", rep.ID)
	}
}

func parseNonNegative(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, input.ErrNegative
	}
	return v, nil
}
