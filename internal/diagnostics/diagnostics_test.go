package diagnostics

import (
	"errors"
	"fmt"
	"testing"
)

func TestDiagnosticErrorString(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *DiagnosticError
		want string
	}{
		{"bare", New(ErrD002, 0, "unknown block"), "[D002] unknown block"},
		{"line", New(ErrD001, 4, "bad node"), "line 4: [D001] bad node"},
		{"file and line", New(ErrD001, 4, "bad node").WithFile("Main.yaml"), "Main.yaml:4: [D001] bad node"},
		{"file", Wrap(cause, ErrD005, "config").WithFile("derw.yaml"), "derw.yaml: [D005] config: boom"},
		{"formatted", Newf(ErrD003, 0, "name '%s' twice", "x"), "[D003] name 'x' twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	base := Wrap(errors.New("eof"), ErrD001, "decode")
	wrapped := fmt.Errorf("loading: %w", base)

	if !IsCode(wrapped, ErrD001) {
		t.Errorf("IsCode(wrapped, D001) = false; want true")
	}
	if IsCode(wrapped, ErrD002) {
		t.Errorf("IsCode(wrapped, D002) = true; want false")
	}
	if IsCode(errors.New("plain"), ErrD001) {
		t.Errorf("IsCode(plain) = true; want false")
	}
	if !errors.Is(wrapped, base.Err) {
		t.Errorf("errors.Is did not reach the cause")
	}
}
