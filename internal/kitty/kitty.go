// Package kitty assembles Kitty graphics protocol escape sequences for
// transmitting RGBA images to the terminal.
//
// Protocol reference: https://sw.kovidgoyal.net/kitty/graphics-protocol/
//
// Encoding is a pure function from a pixel buffer to an ordered list of
// transmission units so it can be tested without a terminal attached.
package kitty

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// bytesPerPixel is fixed: the encoder only accepts 32-bit RGBA (f=32).
const bytesPerPixel = 4

// DefaultChunkSize is the maximum payload length per transmission unit.
// The protocol caps escape-sequence payloads at 4096 bytes of base64 data.
const DefaultChunkSize = 4096

// ErrBufferSize is returned when the pixel buffer does not match the
// declared width×height×4 bytes.
var ErrBufferSize = errors.New("kitty: pixel buffer size does not match dimensions")

// ErrChunkSize is returned for non-positive chunk sizes.
var ErrChunkSize = errors.New("kitty: chunk size must be positive")

// Image describes one transmission: pixel dimensions plus the terminal
// cell area the image should occupy and a stable ID for replacement.
type Image struct {
	ID     uint32
	Width  int // pixels
	Height int // pixels
	Cols   int // terminal cells to occupy horizontally
	Rows   int // terminal cells to occupy vertically
}

// Encode turns an RGBA buffer into an ordered sequence of protocol frames.
// The first frame carries the control keys (format, dimensions, placement)
// and, when the base64 payload exceeds chunkSize, the more-data marker
// (m=1). Middle frames carry only payload with m=1; the final frame drops
// the marker (m=0). Concatenating the payload fields of all frames reproduces
// the base64 encoding of pixels byte-for-byte.
func Encode(img Image, pixels []byte, chunkSize int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, ErrChunkSize
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("kitty: invalid dimensions %dx%d", img.Width, img.Height)
	}
	if len(pixels) != img.Width*img.Height*bytesPerPixel {
		return nil, fmt.Errorf("%w: got %d bytes, want %d (%dx%dx%d)",
			ErrBufferSize, len(pixels), img.Width*img.Height*bytesPerPixel,
			img.Width, img.Height, bytesPerPixel)
	}

	payload := base64.StdEncoding.EncodeToString(pixels)

	// a=T: transmit and display in one go
	// f=32: RGBA, 4 bytes per pixel
	// s,v: pixel dimensions; c,r: cell placement; q=2: suppress responses
	control := fmt.Sprintf("a=T,f=32,s=%d,v=%d,c=%d,r=%d,i=%d,q=2",
		img.Width, img.Height, img.Cols, img.Rows, img.ID)

	if len(payload) <= chunkSize {
		return []string{apc(control, payload)}, nil
	}

	var units []string
	for i := 0; i < len(payload); i += chunkSize {
		end := i + chunkSize
		if end > len(payload) {
			end = len(payload)
		}
		chunk := payload[i:end]
		switch {
		case i == 0:
			units = append(units, apc(control+",m=1", chunk))
		case end < len(payload):
			units = append(units, apc("m=1", chunk))
		default:
			units = append(units, apc("m=0", chunk))
		}
	}
	return units, nil
}

// Delete returns the clear unit removing a previously transmitted image.
// It must be sent before re-transmitting under the same ID so stale
// placements do not stack.
func Delete(id uint32) string {
	return fmt.Sprintf("\x1b_Ga=d,d=i,i=%d\x1b\\", id)
}

// Payload extracts the base64 payload field of a transmission unit.
// Exposed for round-trip verification in tests and diagnostics.
func Payload(unit string) string {
	body := strings.TrimPrefix(unit, "\x1b_G")
	body = strings.TrimSuffix(body, "\x1b\\")
	if i := strings.IndexByte(body, ';'); i >= 0 {
		return body[i+1:]
	}
	return ""
}

func apc(control, payload string) string {
	return "\x1b_G" + control + ";" + payload + "\x1b\\"
}
