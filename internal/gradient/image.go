package gradient

import (
	"image"
	"image/color"
)

// Image rasterizes the gradient into a w by h image, sampling each pixel
// at its centre.
func Image(angle int, stops []ColorStop, w, h int) (*image.RGBA, error) {
	s, err := NewSampler(angle, stops)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := s.Point(float64(x)+0.5, float64(y)+0.5, fw, fh).RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img, nil
}
