package style

import "github.com/danielcho/resume-composer/internal/render"

// Photo shapes.
const (
	PhotoCircle  = "circle"
	PhotoRounded = "rounded"
	PhotoSquare  = "square"
)

// PhotoGeometry resolves the profile photo's size and corner radius from
// the configured size and shape. Unknown shapes fail closed to square.
func PhotoGeometry(sizePt float64, shape string) render.Style {
	if sizePt <= 0 {
		sizePt = 72
	}
	s := render.Style{SizePt: sizePt}
	switch shape {
	case PhotoCircle:
		s.RadiusPt = sizePt / 2
	case PhotoRounded:
		s.RadiusPt = sizePt / 8
	}
	return s
}
