package fundtree

// Zoom bounds in tenths of the natural scale.
const (
	MinZoomTenths     = 1
	MaxZoomTenths     = 20
	DefaultZoomTenths = 3
)

// Zoom is a display scale in [0.1, 2.0], stepped by 0.1. It is stored as
// whole tenths so repeated steps never drift. Pure view state: it has no
// bearing on filtering or data.
type Zoom struct {
	tenths int
}

// NewZoom returns the default 0.3 scale.
func NewZoom() Zoom {
	return Zoom{tenths: DefaultZoomTenths}
}

// ZoomPercent returns the scale nearest to pct percent, clamped to the
// allowed range.
func ZoomPercent(pct int) Zoom {
	return Zoom{tenths: clampTenths((pct + 5) / 10)}
}

// In steps up by 0.1, stopping at 2.0.
func (z Zoom) In() Zoom {
	return Zoom{tenths: clampTenths(z.level() + 1)}
}

// Out steps down by 0.1, stopping at 0.1.
func (z Zoom) Out() Zoom {
	return Zoom{tenths: clampTenths(z.level() - 1)}
}

// Reset returns the default scale.
func (z Zoom) Reset() Zoom {
	return NewZoom()
}

// Percent returns the factor as a whole percentage, e.g. 30.
func (z Zoom) Percent() int {
	return z.level() * 10
}

// level treats the zero value as the default scale.
func (z Zoom) level() int {
	if z.tenths == 0 {
		return DefaultZoomTenths
	}
	return z.tenths
}

func clampTenths(t int) int {
	if t < MinZoomTenths {
		return MinZoomTenths
	}
	if t > MaxZoomTenths {
		return MaxZoomTenths
	}
	return t
}
