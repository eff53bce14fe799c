// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/wavnoise/formats/wav"
)

func writeTestWAV(t *testing.T, path string, samples []int16) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create(%s) error = %v", path, err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 8000, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
}

func TestRun_Inject(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, make([]int16, 800))

	if code := run([]string{"-seed", "1", in, out}); code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRun_Denoise(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, []int16{100, -100, 200, -200})

	if code := run([]string{"-denoise", "0.1", in, out}); code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRun_Analyze(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	writeTestWAV(t, in, []int16{0, 1000, 0, -1000, 0, 1000, 0, -1000})

	if code := run([]string{"-analyze", in}); code != exitOK {
		t.Errorf("run() = %d, want %d", code, exitOK)
	}
}

func TestRun_Preset(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	preset := filepath.Join(dir, "preset.yaml")
	writeTestWAV(t, in, make([]int16, 100))

	if err := os.WriteFile(preset, []byte("seed: 9\nnoiseLevel: 0.01\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if code := run([]string{"-config", preset, in, out}); code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, make([]int16, 10))

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"missing output", []string{in}},
		{"unsupported format", []string{filepath.Join(dir, "in.mp3"), out}},
		{"negative noise level", []string{"-noise-level", "-1", in, out}},
		{"bad bit depth", []string{"-bit-depth", "12", in, out}},
		{"bad threshold", []string{"-denoise", "1.5", in, out}},
		{"missing preset", []string{"-config", filepath.Join(dir, "nope.yaml"), in, out}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := run(tt.args); code != exitUsage {
				t.Errorf("run(%v) = %d, want %d", tt.args, code, exitUsage)
			}
		})
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output file exists after rejected runs")
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()

	code := run([]string{filepath.Join(dir, "nope.wav"), filepath.Join(dir, "out.wav")})
	if code != exitFail {
		t.Errorf("run() = %d, want %d", code, exitFail)
	}
}
