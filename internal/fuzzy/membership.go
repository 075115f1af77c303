package fuzzy

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

// MembershipFunction is a trapezoid over [Start, End] whose plateau spans
// [LeftTop, RightTop] at the given height. A triangle is a trapezoid whose
// plateau is a single point.
//
// A function of height 1 defines a linguistic term. A function of lower
// height is the result of reasoning and cannot be reasoned again.
type MembershipFunction struct {
	start    float64
	leftTop  float64
	rightTop float64
	end      float64
	height   float64
}

// NewTrapezoid creates a trapezoid of normalised height.
func NewTrapezoid(start, leftTop, rightTop, end float64) MembershipFunction {
	return MembershipFunction{start: start, leftTop: leftTop, rightTop: rightTop, end: end, height: 1}
}

// NewTriangle creates a triangle of normalised height.
func NewTriangle(start, top, end float64) MembershipFunction {
	return NewTrapezoid(start, top, top, end)
}

func (mf MembershipFunction) Start() float64    { return mf.start }
func (mf MembershipFunction) LeftTop() float64  { return mf.leftTop }
func (mf MembershipFunction) RightTop() float64 { return mf.rightTop }
func (mf MembershipFunction) End() float64      { return mf.end }
func (mf MembershipFunction) Height() float64   { return mf.height }

// Reasoned reports whether mf was produced by Reason.
func (mf MembershipFunction) Reasoned() bool {
	return mf.height != 1
}

// Validate checks start <= leftTop <= rightTop <= end and a height in [0,1].
func (mf MembershipFunction) Validate() error {
	if !(mf.start <= mf.leftTop && mf.leftTop <= mf.rightTop && mf.rightTop <= mf.end) {
		return fmt.Errorf("points must satisfy start <= left_top <= right_top <= end, got %s", mf)
	}
	if mf.height < 0 || mf.height > 1 {
		return fmt.Errorf("height must be within [0,1], got %.4f", mf.height)
	}
	return nil
}

// Fuzzify returns the degree of membership of x. Both ends of the support are
// exclusive: Fuzzify(start) and Fuzzify(end) are always 0.
func (mf MembershipFunction) Fuzzify(x float64) float64 {
	if x <= mf.start || x >= mf.end {
		return 0
	}

	switch {
	case x >= mf.leftTop && x <= mf.rightTop:
		return mf.height
	case x < mf.leftTop:
		return mf.height * (x - mf.start) / (mf.leftTop - mf.start)
	case x > mf.rightTop:
		return mf.height * (mf.end - x) / (mf.end - mf.rightTop)
	}
	return 0
}

// Reason scales mf by the degree of relevance h: the support is kept, the
// plateau is pulled towards the slopes and the height becomes h. A zero h
// yields the function that is zero everywhere.
func (mf MembershipFunction) Reason(h float64) (MembershipFunction, error) {
	if mf.Reasoned() {
		return MembershipFunction{}, apperr.NewEngine("cannot compute reasoning because the membership function %s was reasoned already", mf)
	}

	if h == 0 {
		return MembershipFunction{}, nil
	}

	return MembershipFunction{
		start:    mf.start,
		leftTop:  h*(mf.leftTop-mf.start) + mf.start,
		rightTop: mf.end - h*(mf.end-mf.rightTop),
		end:      mf.end,
		height:   h,
	}, nil
}

// Plot samples mf at steps+1 equally spaced points of [from, to].
func (mf MembershipFunction) Plot(from, to float64, steps int) Curve {
	c := newCurve(steps + 1)
	increment := math.Abs((to - from) / float64(steps))

	for i := 0; i <= steps; i++ {
		x := from + increment*float64(i)
		c[0][i] = x
		c[1][i] = mf.Fuzzify(x)
	}

	return c
}

func (mf MembershipFunction) String() string {
	return fmt.Sprintf("MF { start = %.2f, left_top = %.2f, right_top = %.2f, end = %.2f, height = %.2f }",
		mf.start, mf.leftTop, mf.rightTop, mf.end, mf.height)
}

// Superposition discretises fns over a shared window and folds them with the
// max operator. The window spans the smallest start and the largest end of
// fns and always contains 0.
func Superposition(fns []MembershipFunction, steps int) (Curve, error) {
	if len(fns) < 2 {
		return Curve{}, apperr.NewEngine("cannot compute superposition for less than two membership functions, got %d", len(fns))
	}
	if steps < 1 {
		return Curve{}, apperr.NewEngine("number of discretisation steps must be positive, got %d", steps)
	}

	minSupport, maxSupport := 0.0, 0.0
	for _, mf := range fns {
		minSupport = math.Min(minSupport, mf.start)
		maxSupport = math.Max(maxSupport, mf.end)
	}

	slog.Debug("Computing superposition", "from", minSupport, "to", maxSupport, "functions", len(fns), "steps", steps)

	result := fns[0].Plot(minSupport, maxSupport, steps)
	for _, mf := range fns[1:] {
		next := mf.Plot(minSupport, maxSupport, steps)
		for i := range result[1] {
			result[1][i] = math.Max(result[1][i], next[1][i])
		}
	}

	return result, nil
}

// CenterOfMass returns the x coordinate of the centroid of the piecewise
// linear curve c. A curve without area yields NaN.
func CenterOfMass(c Curve) float64 {
	var sumMoment, sumArea float64

	xs, ys := c.X(), c.Y()
	for i := 0; i+1 < len(xs) && i+1 < len(ys); i++ {
		x1, x2 := xs[i], xs[i+1]
		y1, y2 := ys[i], ys[i+1]

		mid := 0.5 * (x1 + x2)
		area := 0.5 * (y1 + y2) * (x2 - x1)

		sumMoment += mid * area
		sumArea += area
	}

	com := sumMoment / sumArea
	slog.Debug("Computed center of mass", "x", com)

	return com
}
