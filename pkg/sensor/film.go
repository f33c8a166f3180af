package sensor

// Film describes the image surface attached to a sensor. A distant sensor
// has no spatial extent, so it only accepts a single-pixel film.
type Film struct {
	Width        int     // Pixel count in X
	Height       int     // Pixel count in Y
	FilterRadius float64 // Reconstruction filter radius in pixels
}

// NewFilm creates the default 1x1 film with a box filter of radius 0.5
func NewFilm() *Film {
	return &Film{Width: 1, Height: 1, FilterRadius: 0.5}
}

// Size returns the film's pixel dimensions
func (f *Film) Size() (int, int) {
	return f.Width, f.Height
}
