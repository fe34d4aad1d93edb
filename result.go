package msdf

// MaxBitmapBytes caps the size of a single output bitmap. Requests above it
// fail with ErrOutOfMemory instead of taking the process down.
const MaxBitmapBytes = 1 << 30

// midGray is the encoding of distance zero.
const midGray = 127

// Result is a generated distance field.
//
// Data is an RGB8 bitmap: row-major, 3 bytes per pixel, row 0 first. The
// caller that received the Result owns it exclusively; nothing in this
// package keeps a reference. Call Release once the bitmap has been copied
// or uploaded.
type Result struct {
	Data   []byte
	Width  int
	Height int

	// Scale and Translate are the transform used: pixel = shape*Scale + Translate.
	Scale     float64
	Translate Vec2

	// Range is the encoded distance range in shape units.
	Range float64
}

// newResult allocates a zeroed bitmap of the given size.
func newResult(width, height int) (*Result, error) {
	if width < 0 || height < 0 {
		return nil, ErrOutOfMemory
	}
	n := uint64(width) * uint64(height) * 3
	if n > MaxBitmapBytes {
		return nil, ErrOutOfMemory
	}
	return &Result{
		Data:   make([]byte, n),
		Width:  width,
		Height: height,
	}, nil
}

// fill sets every byte of the bitmap to v.
func (r *Result) fill(v byte) {
	for i := range r.Data {
		r.Data[i] = v
	}
}

// PixelOffset returns the byte offset for pixel (x, y).
func (r *Result) PixelOffset(x, y int) int {
	return (y*r.Width + x) * 3
}

// SetPixel sets the RGB values at (x, y).
func (r *Result) SetPixel(x, y int, red, green, blue byte) {
	i := r.PixelOffset(x, y)
	r.Data[i] = red
	r.Data[i+1] = green
	r.Data[i+2] = blue
}

// Pixel returns the RGB values at (x, y).
func (r *Result) Pixel(x, y int) (red, green, blue byte) {
	i := r.PixelOffset(x, y)
	return r.Data[i], r.Data[i+1], r.Data[i+2]
}

// Median returns the median of the three channels at (x, y): the value a
// renderer reconstructs the distance from.
func (r *Result) Median(x, y int) byte {
	return median3(r.Pixel(x, y))
}

// Clone returns a deep copy that the caller owns independently.
func (r *Result) Clone() *Result {
	c := *r
	c.Data = append([]byte(nil), r.Data...)
	return &c
}

// Release drops the bitmap. The Result must not be read afterwards.
// Releasing twice is a no-op.
func (r *Result) Release() {
	r.Data = nil
	r.Width = 0
	r.Height = 0
}

// Released reports whether Release has been called.
func (r *Result) Released() bool {
	return r.Data == nil
}

func median3(a, b, c byte) byte {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}
