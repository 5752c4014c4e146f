package charton

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindRoundTrip(t *testing.T) {
	err := Errorf(InvalidDomain, "bad domain [%g, %g]", 5.0, 1.0)
	if KindOf(err) != InvalidDomain {
		t.Errorf("KindOf = %v", KindOf(err))
	}
	// The kind survives wrapping.
	wrapped := fmt.Errorf("render: %w", err)
	if KindOf(wrapped) != InvalidDomain {
		t.Errorf("wrapped KindOf = %v", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Error("foreign error reported a kind")
	}
	if KindOf(nil) != 0 {
		t.Error("nil error reported a kind")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(UnsupportedOutputFormat, "cannot infer output format from %q", "x.bmp")
	want := `unsupported output format: cannot infer output format from "x.bmp"`
	if err.Error() != want {
		t.Errorf("message %q, want %q", err.Error(), want)
	}
}
