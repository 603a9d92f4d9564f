package kitty

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func solidRGBA(w, h int) []byte {
	px := make([]byte, w*h*4)
	for i := 0; i < len(px); i += 4 {
		px[i] = byte(i % 251)
		px[i+1] = 0x40
		px[i+2] = 0x80
		px[i+3] = 0xff
	}
	return px
}

func TestEncode_SingleChunk(t *testing.T) {
	img := Image{ID: 7, Width: 4, Height: 2, Cols: 2, Rows: 1}
	px := solidRGBA(4, 2)
	units, err := Encode(img, px, DefaultChunkSize)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	u := units[0]
	if !strings.HasPrefix(u, "\x1b_G") || !strings.HasSuffix(u, "\x1b\\") {
		t.Fatalf("unit is not a valid APC frame: %q", u)
	}
	for _, key := range []string{"a=T", "f=32", "s=4", "v=2", "c=2", "r=1", "i=7", "q=2"} {
		if !strings.Contains(u, key) {
			t.Fatalf("missing control key %q in %q", key, u)
		}
	}
	if strings.Contains(u, "m=1") {
		t.Fatalf("single chunk must not carry more-data marker: %q", u)
	}
}

func TestEncode_ChunkingRoundTrip(t *testing.T) {
	const w, h = 32, 16
	img := Image{ID: 1, Width: w, Height: h, Cols: 10, Rows: 5}
	px := solidRGBA(w, h)

	// Force multiple chunks with a small chunk size.
	units, err := Encode(img, px, 100)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if len(units) < 2 {
		t.Fatalf("expected multiple units, got %d", len(units))
	}

	// First unit has control data + m=1; middles m=1; last m=0.
	if !strings.Contains(units[0], "a=T") || !strings.Contains(units[0], "m=1") {
		t.Fatalf("first unit malformed: %q", units[0])
	}
	for i := 1; i < len(units)-1; i++ {
		if !strings.HasPrefix(units[i], "\x1b_Gm=1;") {
			t.Fatalf("middle unit %d malformed: %q", i, units[i])
		}
	}
	last := units[len(units)-1]
	if strings.Contains(last, "m=1") {
		t.Fatalf("final unit must not signal more data: %q", last)
	}

	// Concatenated payloads must decode back to the exact pixel length.
	var b strings.Builder
	for _, u := range units {
		b.WriteString(Payload(u))
	}
	decoded, err := base64.StdEncoding.DecodeString(b.String())
	if err != nil {
		t.Fatalf("payload concat does not decode: %v", err)
	}
	if len(decoded) != w*h*4 {
		t.Fatalf("decoded length = %d, want %d", len(decoded), w*h*4)
	}
	for i := range decoded {
		if decoded[i] != px[i] {
			t.Fatalf("payload diverges at byte %d", i)
		}
	}
	// Every chunk respects the size cap.
	for i, u := range units {
		if len(Payload(u)) > 100 {
			t.Fatalf("unit %d payload exceeds chunk size: %d bytes", i, len(Payload(u)))
		}
	}
}

func TestEncode_BufferSizeMismatch(t *testing.T) {
	img := Image{ID: 1, Width: 8, Height: 8, Cols: 4, Rows: 2}
	_, err := Encode(img, make([]byte, 8*8*4-1), DefaultChunkSize)
	if !errors.Is(err, ErrBufferSize) {
		t.Fatalf("expected ErrBufferSize, got %v", err)
	}
}

func TestEncode_BadChunkSize(t *testing.T) {
	img := Image{ID: 1, Width: 2, Height: 2, Cols: 1, Rows: 1}
	if _, err := Encode(img, solidRGBA(2, 2), 0); !errors.Is(err, ErrChunkSize) {
		t.Fatalf("expected ErrChunkSize, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	got := Delete(42)
	if got != "\x1b_Ga=d,d=i,i=42\x1b\\" {
		t.Fatalf("unexpected delete unit: %q", got)
	}
}
