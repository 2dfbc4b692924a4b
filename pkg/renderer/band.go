package renderer

import "image"

// Band is a horizontal strip of whole rows. Bands never overlap, so workers can write
// their pixels into a shared framebuffer without locking.
type Band struct {
	ID     int             // Unique band identifier, also its position top to bottom
	Bounds image.Rectangle // Pixel bounds (0,y0,width,y1)
}

// NewBandGrid splits a width x height image into bands of at most rowsPerBand rows
func NewBandGrid(width, height, rowsPerBand int) []*Band {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}

	var bands []*Band
	bandID := 0
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, height) // Don't exceed image bounds
		bands = append(bands, &Band{
			ID:     bandID,
			Bounds: image.Rect(0, y0, width, y1),
		})
		bandID++
	}

	return bands
}
