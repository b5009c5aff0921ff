package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/neopop"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := neopop.Logger()
	t.Cleanup(func() { neopop.SetLogger(orig) })

	var logs, out bytes.Buffer
	root := newCLI(&logs).rootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "--direction", "topLeft")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	for _, want := range []string{"TopLeft", "BottomRight", "center", "topEdge"} {
		if !strings.Contains(out, want) {
			t.Errorf("describe output lacks %q:\n%s", want, out)
		}
	}
}

func TestDescribeUnknownDirection(t *testing.T) {
	if _, err := execute(t, "describe", "--direction", "sideways"); err == nil {
		t.Error("describe --direction sideways succeeded, want error")
	}
}

func TestRenderDefaultShowcase(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.png")
	if _, err := execute(t, "render", "--out", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("render wrote no PNG: %v", err)
	}
}

func TestRenderConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "showcase.yaml")
	data := "columns: 2\nbuttons:\n  - title: Go\n    direction: bottom:0.5\n  - title: Stop\n    direction: topLeft\n    state: disabled\n"
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "grid.png")
	if _, err := execute(t, "render", "--config", cfg, "--out", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("render wrote no PNG: %v", err)
	}
}

func TestAnimate(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "animate", "--frames", "4", "--scale", "1", "--out", dir); err != nil {
		t.Fatalf("animate: %v", err)
	}
	frames, err := filepath.Glob(filepath.Join(dir, "frame-*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 4 {
		t.Errorf("animate wrote %d frames, want 4", len(frames))
	}
}

func TestAnimateRejectsOneFrame(t *testing.T) {
	if _, err := execute(t, "animate", "--frames", "1", "--out", t.TempDir()); err == nil {
		t.Error("animate --frames 1 succeeded, want error")
	}
}
