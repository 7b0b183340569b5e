// Package render projects ray hits and sprites onto an RGBA raster.
// Frontends decide how to present the raster: the terminal build
// downsamples it to shade runes, the graphical build blits it
// directly.
package render

// RGB is a packed display color
type RGB struct {
	R, G, B uint8
}

// Scale multiplies the color by a brightness factor in [0, 1]
func (c RGB) Scale(f float64) RGB {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Frame is a width*height RGBA pixel raster
type Frame struct {
	width, height int
	pix           []byte
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Pix returns the raw RGBA buffer, row-major
func (f *Frame) Pix() []byte { return f.pix }

// Resize reallocates the raster, discarding contents
func (f *Frame) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.pix = make([]byte, width*height*4)
}

// Clear fills the raster with the background color
func (f *Frame) Clear(c RGB) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = 0xff
	}
}

// Set writes one pixel; out-of-bounds writes are dropped
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = 0xff
}

// At reads one pixel; out-of-bounds reads return black
func (f *Frame) At(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGB{}
	}
	i := (y*f.width + x) * 4
	return RGB{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2]}
}

// FillRow paints an entire row y
func (f *Frame) FillRow(y int, c RGB) {
	if y < 0 || y >= f.height {
		return
	}
	i := y * f.width * 4
	for x := 0; x < f.width; x++ {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = 0xff
		i += 4
	}
}

// FillColumn paints a vertical span [y0, y1) in column x
func (f *Frame) FillColumn(x, y0, y1 int, c RGB) {
	if x < 0 || x >= f.width {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > f.height {
		y1 = f.height
	}
	for y := y0; y < y1; y++ {
		i := (y*f.width + x) * 4
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = 0xff
	}
}
