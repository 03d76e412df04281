package conflict

// Shape is the common surface of polygons and circles.
type Shape interface {
	BB() BB
	ContainsPoint(p Vector) bool
	Projection(axis Vector) Segment
}

var (
	_ Shape = Polygon{}
	_ Shape = Circle{}
)

// Segment is the extent of a shape projected onto an axis.
type Segment struct {
	Min, Max float64
}

func (s Segment) Length() float64 {
	return s.Max - s.Min
}

// Overlaps reports whether the two segments share at least one point.
func (s Segment) Overlaps(other Segment) bool {
	return !(s.Max < other.Min || other.Max < s.Min)
}

// Contains reports whether other lies completely within s.
func (s Segment) Contains(other Segment) bool {
	return s.Min <= other.Min && other.Max <= s.Max
}

// OverlapMTV is the signed distance s has to move along the axis to stop overlapping
// other. ok is false when the segments don't overlap at all.
//
// When one segment contains the other the shorter of the two ways out is taken; on
// an exact tie s escapes towards the positive end of the axis.
func (s Segment) OverlapMTV(other Segment) (delta float64, ok bool) {
	if !s.Overlaps(other) {
		return 0, false
	}

	toNegative := other.Min - s.Max
	toPositive := other.Max - s.Min

	if s.Contains(other) || other.Contains(s) {
		if -toNegative < toPositive {
			return toNegative, true
		}
		return toPositive, true
	}

	if s.Min < other.Min {
		return toNegative, true
	}
	return toPositive, true
}
