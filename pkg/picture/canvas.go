package picture

// Canvas is a fixed-size grid of pixels, indexed by (x, y) with the
// origin at the top-left. Every pixel starts black. Indexing outside
// the grid is a caller error and panics via the slice bounds check.
type Canvas struct {
	width  int
	height int
	data   [][]ColorRgb
}

// NewCanvas creates a width x height canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	data := make([][]ColorRgb, height)
	for y := range data {
		data[y] = make([]ColorRgb, width)
	}
	return &Canvas{width: width, height: height, data: data}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the color of the pixel at (x, y)
func (c *Canvas) WritePixel(x, y int, color ColorRgb) {
	c.data[y][x] = color
}

// PixelAt returns the color of the pixel at (x, y)
func (c *Canvas) PixelAt(x, y int) ColorRgb {
	return c.data[y][x]
}
