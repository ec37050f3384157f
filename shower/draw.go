package shower

import "math"

// DrawBody paints the trailing streak and then the opaque body.
func DrawBody(s Surface, b FallingBody) {
	trail := b.VY * BodyTrailFactor
	s.FillRect(b.X, b.Y-trail, b.Size, trail, b.Color, BodyTrailAlpha)
	s.FillRect(b.X, b.Y, b.Size, math.Max(b.Size, b.VY), b.Color, 1)
}

// DrawParticle paints a square that fades with the particle's life.
func DrawParticle(s Surface, p ImpactParticle) {
	if p.Expired() {
		return
	}
	s.FillRect(p.X, p.Y, p.Size, p.Size, p.Color, p.Life)
}

// DrawRing strokes a flattened ellipse outline.
func DrawRing(s Surface, r ShockwaveRing) {
	if r.Faded() {
		return
	}
	s.StrokeEllipse(r.X, r.Y, r.Radius, r.Radius*RingFlatten, RingLineWidth, r.Color, r.Opacity)
}

// EllipseSegments is how many straight segments approximate an ellipse
// outline on surfaces without a native ellipse primitive.
const EllipseSegments = 48

// EllipsePoints returns n+1 points around an axis-aligned ellipse, starting
// and ending at angle zero so consecutive pairs form a closed outline.
func EllipsePoints(cx, cy, rx, ry float64, n int) [][2]float64 {
	if n < 3 {
		n = 3
	}
	points := make([][2]float64, n+1)
	for i := range n {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = [2]float64{cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)}
	}
	points[n] = points[0]
	return points
}
