package system

import (
	"fmt"
	"testing"
)

func TestRing_KeepsLastN(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		fmt.Fprintf(r, "line %d\n", i)
	}
	got := r.Lines()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != "line 2" || got[2] != "line 4" {
		t.Fatalf("unexpected lines: %v", got)
	}
}

func TestRing_PartialWrites(t *testing.T) {
	r := NewRing(4)
	r.Write([]byte("hel"))
	r.Write([]byte("lo\nwor"))
	r.Write([]byte("ld\n"))
	got := r.Lines()
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Fatalf("unexpected lines: %v", got)
	}
}
