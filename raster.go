package gg3d

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

// plotFunc receives one rasterized pixel. A non-nil error stops
// rasterization.
type plotFunc func(x, y int) error

func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// rasterLine plots the pixels of the segment (x0, y0)-(x1, y1) that lie
// inside clip, using integer Bresenham stepping. Shallow lines step along x
// and steep lines along y, always in increasing order, so the pixel set does
// not depend on endpoint order. Pixels outside clip are never visited; their
// number is returned.
func rasterLine(x0, y0, x1, y1 int, clip image.Rectangle, plot plotFunc) (int, error) {
	switch {
	case y0 == y1:
		if y0 < clip.Min.Y || y0 >= clip.Max.Y {
			return abs(x1-x0) + 1, nil
		}
		return run(min(x0, x1), max(x0, x1), span{clip.Min.X, clip.Max.X}, func(x int) error {
			return plot(x, y0)
		})
	case x0 == x1:
		if x0 < clip.Min.X || x0 >= clip.Max.X {
			return abs(y1-y0) + 1, nil
		}
		return run(min(y0, y1), max(y0, y1), span{clip.Min.Y, clip.Max.Y}, func(y int) error {
			return plot(x0, y)
		})
	}

	xs, ys := span{clip.Min.X, clip.Max.X}, span{clip.Min.Y, clip.Max.Y}
	dx, dy := abs(x1-x0), abs(y1-y0)
	if dx >= dy {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		return step(x0, y0, x1, dx, dy, sign(y1-y0), xs, ys, plot)
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	// Steep lines are shallow lines with the axes swapped.
	return step(y0, x0, y1, dy, dx, sign(x1-x0), ys, xs, func(y, x int) error {
		return plot(x, y)
	})
}

// span is the half-open interval [lo, hi).
type span struct{ lo, hi int }

func (s span) contains(v int) bool {
	return v >= s.lo && v < s.hi
}

// run visits the part of [lo, hi] inside s and returns how many values it
// skipped.
func run(lo, hi int, s span, visit func(int) error) (int, error) {
	a, b := max(lo, s.lo), min(hi, s.hi-1)
	for v := a; v <= b; v++ {
		if err := visit(v); err != nil {
			return 0, err
		}
	}
	return hi - lo + 1 - max(0, b-a+1), nil
}

// step walks the major axis from u0 to u1, moving the minor axis by vstep
// whenever the decision variable turns positive. du >= dv > 0. The walk
// starts at the first u inside us and stops at the last; pixels whose v
// falls outside vs are skipped.
func step(u0, v0, u1, du, dv, vstep int, us, vs span, plot plotFunc) (int, error) {
	lo, hi := max(u0, us.lo), min(u1, us.hi-1)
	plotted := 0
	if lo <= hi {
		// After k steps the minor axis has moved n times, n being the
		// largest integer with 2*du*n < 2*dv*k + du.
		k := lo - u0
		n := (2*dv*k + du - 1) / (2 * du)
		v := v0 + vstep*n
		d := 2*dv*(k+1) - du - 2*du*n
		for u := lo; u <= hi; u++ {
			if vs.contains(v) {
				if err := plot(u, v); err != nil {
					return 0, err
				}
				plotted++
			}
			if d > 0 {
				v += vstep
				d -= 2 * du
			}
			d += 2 * dv
		}
	}
	return u1 - u0 + 1 - plotted, nil
}

// scanEdge walks a triangle side one row at a time. Its x at row y is the
// exact intersection rounded half up, held as x + r/(2*dy) with
// 0 <= r < 2*dy so that each row costs only additions.
type scanEdge struct {
	x0, y0, dx, dy int
	q, rem         int // per-row step: 2*dx = q*2*dy + rem
	x, r           int
}

func newScanEdge(p, q Point) scanEdge {
	x0, y0 := int(p.X()), int(p.Y())
	e := scanEdge{x0: x0, y0: y0, dx: int(q.X()) - x0, dy: int(q.Y()) - y0}
	if e.dy > 0 {
		e.q = floorDiv(2*e.dx, 2*e.dy)
		e.rem = 2*e.dx - e.q*2*e.dy
	}
	return e
}

// numerator returns 2*dy*x(y) + dy, the row position over 2*dy.
func (e *scanEdge) numerator(y int) int {
	return 2*(e.x0*e.dy+e.dx*(y-e.y0)) + e.dy
}

// seek moves the walk to row y.
func (e *scanEdge) seek(y int) {
	if e.dy == 0 {
		e.x, e.r = e.x0, 0
		return
	}
	n := e.numerator(y)
	e.x = floorDiv(n, 2*e.dy)
	e.r = n - e.x*2*e.dy
}

// next advances the walk by one row.
func (e *scanEdge) next() {
	e.x += e.q
	e.r += e.rem
	if e.dy > 0 && e.r >= 2*e.dy {
		e.x++
		e.r -= 2 * e.dy
	}
}

// sum returns the sum of the row positions over the rows lo..hi.
func (e *scanEdge) sum(lo, hi int) int {
	n := hi - lo + 1
	if n <= 0 {
		return 0
	}
	if e.dy == 0 {
		return n * e.x0
	}
	return floorSum(n, 2*e.dy, 2*e.dx, e.numerator(lo))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorSum returns the sum of floor((a*i + b) / m) for i in [0, n), m > 0.
func floorSum(n, m, a, b int) int {
	sum := 0
	if a < 0 {
		a2 := a % m
		if a2 < 0 {
			a2 += m
		}
		sum -= n * (n - 1) / 2 * ((a2 - a) / m)
		a = a2
	}
	if b < 0 {
		b2 := b % m
		if b2 < 0 {
			b2 += m
		}
		sum -= n * ((b2 - b) / m)
		b = b2
	}
	for {
		if a >= m {
			sum += n * (n - 1) / 2 * (a / m)
			a %= m
		}
		if b >= m {
			sum += n * (b / m)
			b %= m
		}
		y := a*n + b
		if y < m {
			return sum
		}
		n, b = y/m, y%m
		m, a = a, m
	}
}

// rasterTriangle fills a triangle with pixel-rounded vertices one scanline
// at a time, drawing each row with rasterLine. Rows above or below clip are
// not visited; their pixels are counted from the edge sums.
func rasterTriangle(tri Triangle, clip image.Rectangle, plot plotFunc) (int, error) {
	b, m, t := tri[0], tri[1], tri[2]
	if b.Y() > m.Y() {
		b, m = m, b
	}
	if m.Y() > t.Y() {
		m, t = t, m
	}
	if b.Y() > m.Y() {
		b, m = m, b
	}

	by, my, ty := int(b.Y()), int(m.Y()), int(t.Y())
	if by == ty {
		lo := math.Min(b.X(), math.Min(m.X(), t.X()))
		hi := math.Max(b.X(), math.Max(m.X(), t.X()))
		return rasterLine(int(lo), by, int(hi), by, clip, plot)
	}

	long, lower, upper := newScanEdge(b, t), newScanEdge(b, m), newScanEdge(m, t)
	// The long side is on the left iff it passes left of m.
	longLeft := long.numerator(my) < 2*long.dy*int(m.X())+long.dy

	// skipped counts the pixels in rows lo..hi without visiting them.
	skipped := func(lo, hi int) int {
		n := 0
		for _, r := range [2]struct {
			e      *scanEdge
			lo, hi int
		}{{&lower, lo, min(hi, my-1)}, {&upper, max(lo, my), hi}} {
			if r.lo > r.hi {
				continue
			}
			w := r.e.sum(r.lo, r.hi) - long.sum(r.lo, r.hi)
			if !longLeft {
				w = -w
			}
			n += w + r.hi - r.lo + 1
		}
		return n
	}

	first, last := max(by, clip.Min.Y), min(ty, clip.Max.Y-1)
	dropped := skipped(by, min(ty, first-1)) + skipped(max(by, last+1), ty)
	if first > last {
		return dropped, nil
	}
	long.seek(first)
	short := &lower
	if first > my {
		short = &upper
	}
	short.seek(first)
	for y := first; y <= last; y++ {
		if y == my {
			short = &upper
			short.seek(y)
		}
		n, err := rasterLine(long.x, y, short.x, y, clip, plot)
		if err != nil {
			return 0, err
		}
		dropped += n
		long.next()
		short.next()
	}
	return dropped, nil
}
