package debug

import (
	"errors"
	"io"
	"os"
	"testing"
)

// captureStderr swaps os.Stderr for a pipe while fn runs.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	saved := os.Stderr
	os.Stderr = w
	fn()
	os.Stderr = saved
	_ = w.Close()
	out, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

// ============================================================================
// DIAGNOSTIC LINE TESTS
// ============================================================================

func TestDropError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with_error", errors.New("bad word"), "DECODE: bad word\n"},
		{"nil_error", nil, "DECODE\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureStderr(t, func() { DropError("DECODE", tt.err) })
			if got != tt.want {
				t.Errorf("DropError wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDropMessage(t *testing.T) {
	got := captureStderr(t, func() { DropMessage("CONFIG", ".gctdump.yaml") })
	if want := "CONFIG: .gctdump.yaml\n"; got != want {
		t.Errorf("DropMessage wrote %q, want %q", got, want)
	}
}
