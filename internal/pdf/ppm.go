package pdf

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// decodePPM parses a binary P6 PPM stream into an RGBA image. pdftoppm
// emits P6 with maxval 255; anything else is rejected.
func decodePPM(r io.Reader) (*image.RGBA, error) {
	br := bufio.NewReader(r)
	magic, err := ppmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic %q", magic)
	}
	w, err := ppmInt(br)
	if err != nil {
		return nil, err
	}
	h, err := ppmInt(br)
	if err != nil {
		return nil, err
	}
	maxval, err := ppmInt(br)
	if err != nil {
		return nil, err
	}
	if maxval != 255 {
		return nil, fmt.Errorf("ppm: unsupported maxval %d", maxval)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ppm: invalid dimensions %dx%d", w, h)
	}

	raw := make([]byte, w*h*3)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("ppm: truncated pixel data: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4+0] = raw[i*3+0]
		img.Pix[i*4+1] = raw[i*3+1]
		img.Pix[i*4+2] = raw[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	return img, nil
}

// ppmToken reads the next whitespace-delimited token, skipping comments.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(tok) > 0 && err == io.EOF {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func ppmInt(br *bufio.Reader) (int, error) {
	tok, err := ppmToken(br)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("ppm: bad integer %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
