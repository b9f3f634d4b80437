package boot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/consoles"
	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/modes"
	"github.com/reusee/venvboot/spawns"
)

// harness simulates the filesystem and the processes so both branches of
// the sequence run without python.
type harness struct {
	t           *testing.T
	layout      envs.Layout
	state       envs.State
	manifest    string
	useMarker   bool
	pause       bool
	commands    []spawns.Command
	respond     func(cmd spawns.Command) (spawns.Result, error)
	activate    func(layout envs.Layout) (*envs.Activation, error)
	activations int
	marks       int
	holds       int
	trace       []string
}

func newHarness(t *testing.T) *harness {
	manifest := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(manifest, []byte("flask==3.0.0\nflask_sqlalchemy\nwerkzeug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return &harness{
		t:        t,
		layout:   envs.Layout{Dir: "venv", GOOS: "linux"},
		state:    envs.Absent,
		manifest: manifest,
		pause:    true,
	}
}

func (h *harness) scope(defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(h.t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() envs.Layout {
			return h.layout
		},
		func() Interpreter {
			return "python3"
		},
		func() Manifest {
			return Manifest(h.manifest)
		},
		func() envs.UseMarker {
			return envs.UseMarker(h.useMarker)
		},
		func() Pause {
			return Pause(h.pause)
		},
		func() envs.Inspect {
			return func(envs.Layout) (envs.State, error) {
				h.trace = append(h.trace, "inspect")
				return h.state, nil
			}
		},
		func() envs.MarkComplete {
			return func(envs.Layout) error {
				h.trace = append(h.trace, "mark")
				h.marks++
				h.state = envs.Present
				return nil
			}
		},
		func() envs.Activate {
			return func(layout envs.Layout) (*envs.Activation, error) {
				h.trace = append(h.trace, "activate")
				h.activations++
				if h.activate != nil {
					return h.activate(layout)
				}
				return &envs.Activation{
					Layout: layout,
					BinDir: layout.BinDir(),
					Python: layout.Python(),
				}, nil
			}
		},
		func() spawns.Spawn {
			return func(_ context.Context, cmd spawns.Command) (spawns.Result, error) {
				h.commands = append(h.commands, cmd)
				h.trace = append(h.trace, "spawn")
				if h.respond != nil {
					if result, err := h.respond(cmd); err != nil || !result.Success() {
						return result, err
					}
				}
				if isCreate(cmd) {
					// the directory exists from here on, finished or not
					if h.useMarker {
						h.state = envs.Partial
					} else {
						h.state = envs.Present
					}
				}
				return spawns.Result{}, nil
			}
		},
		func() consoles.Hold {
			return func() error {
				h.trace = append(h.trace, "hold")
				h.holds++
				return nil
			}
		},
	).Fork(defs...)
}

func (h *harness) run(defs ...any) (out Outcome) {
	h.scope(defs...).Call(func(
		bootstrap Bootstrap,
	) {
		out = bootstrap(context.Background())
	})
	return
}

func (h *harness) commandLines() []string {
	var ret []string
	for _, cmd := range h.commands {
		ret = append(ret, cmd.String())
	}
	return ret
}

func isCreate(cmd spawns.Command) bool {
	return len(cmd.Args) >= 2 && cmd.Args[0] == "-m" && cmd.Args[1] == "venv"
}

func expectLines(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("got:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
