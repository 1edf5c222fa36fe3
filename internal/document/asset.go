package document

import (
	"bytes"
	"image/png"
	"os"
)

// Asset is the outcome of a decorative resource load: either loaded image
// data with its pixel dimensions, or unavailable. Rendering never fails on
// an unavailable asset; it falls back to text.
type Asset struct {
	Data   []byte
	Width  int
	Height int
	Loaded bool
}

// LoadLogo reads and decodes the logo PNG in the background and delivers
// the result on the returned channel. Any failure resolves to an
// unavailable asset; callers receive exactly one value.
func LoadLogo(path string) <-chan Asset {
	ch := make(chan Asset, 1)
	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			ch <- Asset{}
			return
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			ch <- Asset{}
			return
		}
		ch <- Asset{Data: data, Width: cfg.Width, Height: cfg.Height, Loaded: true}
	}()
	return ch
}
