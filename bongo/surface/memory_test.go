package surface

import (
	"errors"
	"testing"

	"github.com/allape/bongocat/bongo/render"
)

func TestMemory(t *testing.T) {
	var s Surface = &Memory{PixelFormat: render.FormatARGB32}

	if _, err := s.Buffer(); err == nil {
		t.Fatal("expected error before resize")
	}
	if err := s.Resize(0, 3); !errors.Is(err, render.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}

	if err := s.Resize(4, 3); err != nil {
		t.Fatal(err)
	}
	buf, err := s.Buffer()
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 4*3*4 {
		t.Fatalf("expected 48 bytes, got %d", len(buf))
	}

	buf[0] = 9
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}
	buf[0] = 1

	m := s.(*Memory)
	if m.Presents != 1 || m.Presented[0] != 9 {
		t.Fatalf("expected presented copy, got %d presents and %v", m.Presents, m.Presented[0])
	}
}
