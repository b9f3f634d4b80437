package boot

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/nets"
	"github.com/reusee/venvboot/spawns"
)

func TestFreshRun(t *testing.T) {
	h := newHarness(t)
	out := h.run()

	python := h.layout.Python()
	expectLines(t, h.commandLines(),
		"python3 -m venv venv",
		python+" -m pip install --upgrade pip",
		python+" -m pip install -r "+h.manifest,
		python+" app.py",
	)
	if str := strings.Join(h.trace, " "); str != "inspect spawn spawn spawn activate spawn hold" {
		t.Fatalf("got %s", str)
	}
	if out.Err != nil {
		t.Fatal(out.Err)
	}
	if out.State != envs.Absent || !out.Launched || out.ExitCode != 0 {
		t.Fatalf("got %+v", out)
	}
	if out.Activation == nil {
		t.Fatal()
	}

	launch := h.commands[len(h.commands)-1]
	if !slices.Contains(launch.Env, "VIRTUAL_ENV=venv") {
		t.Fatalf("launch env not activated: %v", launch.Env)
	}
}

func TestRepeatRun(t *testing.T) {
	h := newHarness(t)
	h.state = envs.Present
	out := h.run()

	expectLines(t, h.commandLines(),
		h.layout.Python()+" app.py",
	)
	if str := strings.Join(h.trace, " "); str != "inspect activate spawn hold" {
		t.Fatalf("got %s", str)
	}
	if out.State != envs.Present || out.ExitCode != 0 || out.Err != nil {
		t.Fatalf("got %+v", out)
	}
}

func TestIdempotent(t *testing.T) {
	h := newHarness(t)
	h.run()
	first := len(h.commands)
	if first != 4 {
		t.Fatalf("got %v", h.commandLines())
	}

	h.run()
	expectLines(t, h.commandLines()[first:],
		h.layout.Python()+" app.py",
	)
	if h.activations != 2 {
		t.Fatalf("activation must run on every invocation, got %d", h.activations)
	}
	if h.holds != 2 {
		t.Fatalf("got %d", h.holds)
	}
}

func TestMissingManifest(t *testing.T) {
	h := newHarness(t)
	h.manifest = filepath.Join(t.TempDir(), "requirements.txt")
	out := h.run()

	for _, cmd := range h.commands {
		if slices.Contains(cmd.Args, "-r") || cmd.Args[0] == "app.py" {
			t.Fatalf("unexpected %s", cmd)
		}
	}
	if len(h.commands) != 2 {
		t.Fatalf("got %v", h.commandLines())
	}
	if h.activations != 0 || out.Launched {
		t.Fatal("must not get past the failing install")
	}
	if h.holds != 1 {
		t.Fatalf("got %d", h.holds)
	}

	var stepErr *StepError
	if !errors.As(out.Err, &stepErr) {
		t.Fatalf("got %v", out.Err)
	}
	if stepErr.Step != StepInstall {
		t.Fatalf("got %s", stepErr.Step)
	}
	if !errors.Is(out.Err, fs.ErrNotExist) {
		t.Fatalf("got %v", out.Err)
	}
	if out.ExitCode != 1 {
		t.Fatalf("got %d", out.ExitCode)
	}
	// the half-created directory stays behind
	if h.state != envs.Present {
		t.Fatalf("got %v", h.state)
	}
}

func TestSetupFailures(t *testing.T) {
	for _, c := range []struct {
		name     string
		failArg  string
		result   spawns.Result
		err      error
		step     Step
		exitCode int
		spawned  int
	}{
		{"create", "venv", spawns.Result{ExitCode: 2}, nil, StepCreate, 2, 1},
		{"no interpreter", "venv", spawns.Result{ExitCode: spawns.ExitNotStarted}, spawns.ErrNotStarted, StepCreate, 127, 1},
		{"upgrade", "--upgrade", spawns.Result{ExitCode: 1}, nil, StepUpgrade, 1, 2},
		{"install", "-r", spawns.Result{ExitCode: 1}, nil, StepInstall, 1, 3},
		{"install killed", "-r", spawns.Result{ExitCode: 130, Signal: "interrupt"}, nil, StepInstall, 130, 3},
	} {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.respond = func(cmd spawns.Command) (spawns.Result, error) {
				if slices.Contains(cmd.Args, c.failArg) {
					if c.err != nil {
						return c.result, fmt.Errorf("%w: %s", c.err, cmd.Name)
					}
					return c.result, nil
				}
				return spawns.Result{}, nil
			}
			out := h.run()

			if len(h.commands) != c.spawned {
				t.Fatalf("got %v", h.commandLines())
			}
			var stepErr *StepError
			if !errors.As(out.Err, &stepErr) || stepErr.Step != c.step {
				t.Fatalf("got %v", out.Err)
			}
			if out.ExitCode != c.exitCode {
				t.Fatalf("got %d", out.ExitCode)
			}
			if h.activations != 0 || out.Launched {
				t.Fatal()
			}
			if h.holds != 1 {
				t.Fatalf("got %d", h.holds)
			}
		})
	}
}

func TestApplicationExitStatus(t *testing.T) {
	for _, result := range []spawns.Result{
		{ExitCode: 0},
		{ExitCode: 3},
		{ExitCode: 139, Signal: "segmentation fault"},
	} {
		t.Run(fmt.Sprint(result.ExitCode), func(t *testing.T) {
			h := newHarness(t)
			h.state = envs.Present
			h.respond = func(spawns.Command) (spawns.Result, error) {
				return result, nil
			}
			out := h.run()
			if out.Err != nil {
				t.Fatal(out.Err)
			}
			if !out.Launched || out.Result != result || out.ExitCode != result.ExitCode {
				t.Fatalf("got %+v", out)
			}
			if h.holds != 1 {
				t.Fatalf("pause must follow every exit, got %d", h.holds)
			}
		})
	}
}

func TestApplicationNotStarted(t *testing.T) {
	h := newHarness(t)
	h.state = envs.Present
	h.respond = func(cmd spawns.Command) (spawns.Result, error) {
		return spawns.Result{ExitCode: spawns.ExitNotStarted}, fmt.Errorf("%w: %s", spawns.ErrNotStarted, cmd.Name)
	}
	out := h.run()
	if out.Launched || out.ExitCode != 127 {
		t.Fatalf("got %+v", out)
	}
	if !errors.Is(out.Err, spawns.ErrNotStarted) {
		t.Fatalf("got %v", out.Err)
	}
	if h.holds != 1 {
		t.Fatal()
	}
}

func TestActivationFailure(t *testing.T) {
	h := newHarness(t)
	h.state = envs.Present
	h.activate = func(envs.Layout) (*envs.Activation, error) {
		return nil, fmt.Errorf("no interpreter: %w", fs.ErrNotExist)
	}
	out := h.run()
	if len(h.commands) != 0 {
		t.Fatalf("got %v", h.commandLines())
	}
	var stepErr *StepError
	if !errors.As(out.Err, &stepErr) || stepErr.Step != StepActivate {
		t.Fatalf("got %v", out.Err)
	}
	if out.ExitCode != 1 || h.holds != 1 {
		t.Fatalf("got %+v", out)
	}
}

func TestNoPause(t *testing.T) {
	h := newHarness(t)
	h.state = envs.Present
	h.pause = false
	h.run()
	if h.holds != 0 {
		t.Fatal()
	}
}

func TestCompletionMarker(t *testing.T) {
	h := newHarness(t)
	h.useMarker = true
	h.state = envs.Partial
	out := h.run()

	python := h.layout.Python()
	expectLines(t, h.commandLines(),
		"python3 -m venv --clear venv",
		python+" -m pip install --upgrade pip",
		python+" -m pip install -r "+h.manifest,
		python+" app.py",
	)
	if h.marks != 1 || out.State != envs.Partial {
		t.Fatalf("got %d %v", h.marks, out.State)
	}

	// marked environments are left alone
	h.commands = nil
	h.run()
	expectLines(t, h.commandLines(), python+" app.py")
}

func TestMarkerNotWrittenOnFailure(t *testing.T) {
	h := newHarness(t)
	h.useMarker = true
	h.respond = func(cmd spawns.Command) (spawns.Result, error) {
		if slices.Contains(cmd.Args, "-r") {
			return spawns.Result{ExitCode: 1}, nil
		}
		return spawns.Result{}, nil
	}
	h.run()
	if h.marks != 0 {
		t.Fatal()
	}
	if h.state != envs.Partial {
		t.Fatalf("got %v", h.state)
	}
}

func TestInstallerOptions(t *testing.T) {
	h := newHarness(t)
	h.run(
		func() IndexURL {
			return "https://203.0.113.5/simple"
		},
		func() nets.ProxyAddr {
			return "http://proxy.example.com:3128"
		},
		func() UpgradeInstaller {
			return false
		},
	)
	python := h.layout.Python()
	expectLines(t, h.commandLines(),
		"python3 -m venv venv",
		python+" -m pip install --index-url https://203.0.113.5/simple --proxy http://proxy.example.com:3128 -r "+h.manifest,
		python+" app.py",
	)
}

func TestBadProxyFailsBeforeCreation(t *testing.T) {
	h := newHarness(t)
	out := h.run(
		func() nets.ProxyAddr {
			return "gopher://proxy.example.com:70"
		},
	)
	if len(h.commands) != 0 {
		t.Fatalf("got %v", h.commandLines())
	}
	var stepErr *StepError
	if !errors.As(out.Err, &stepErr) || stepErr.Step != StepEnsure {
		t.Fatalf("got %v", out.Err)
	}
}

func TestEntryModule(t *testing.T) {
	h := newHarness(t)
	h.state = envs.Present
	h.run(
		func() Entry {
			return Entry{
				Module: "lively_marketplace_app",
				Args:   []string{"--port", "8080"},
			}
		},
	)
	expectLines(t, h.commandLines(),
		h.layout.Python()+" -m lively_marketplace_app --port 8080",
	)
}

func TestProxyWithoutSchemeDoesNotBlockSetup(t *testing.T) {
	h := newHarness(t)
	out := h.run(
		func() nets.ProxyAddr {
			return "proxy.corp:3128"
		},
	)
	if out.Err != nil {
		t.Fatal(out.Err)
	}
	python := h.layout.Python()
	expectLines(t, h.commandLines(),
		"python3 -m venv venv",
		python+" -m pip install --proxy http://proxy.corp:3128 --upgrade pip",
		python+" -m pip install --proxy http://proxy.corp:3128 -r "+h.manifest,
		python+" app.py",
	)
}
