package conflict

import (
	"math"
	"slices"
)

// maxHashedCells caps how many cells one bounding box is hashed into. Bigger boxes are
// kept aside and returned by every query.
const maxHashedCells = 4096

// cells beyond this coordinate can't be converted to ints safely
const maxCellCoord = 1 << 52

// spaceHash buckets bounding boxes into square cells for one tick. Handles are the
// indexes of the boxes it was built from.
type spaceHash struct {
	celldim float64
	table   [][]int
	bbs     []BB

	oversized []int

	// an index is reported once per query
	stamps []uint
	stamp  uint
}

func newSpaceHash(celldim float64, bbs []BB) *spaceHash {
	hash := &spaceHash{
		celldim: celldim,
		table:   make([][]int, 2*len(bbs)+1),
		bbs:     bbs,
		stamps:  make([]uint, len(bbs)),
	}
	for i, bb := range bbs {
		hash.hashHandle(i, bb)
	}
	return hash
}

func hashFunc(x, y, n int) int {
	return int((uint64(x)*1640531513 ^ uint64(y)*2654435789) % uint64(n))
}

// cellRange returns the cells covered by bb, ok is false when there are too many.
func (hash *spaceHash) cellRange(bb BB) (l, b, r, t int, ok bool) {
	dim := hash.celldim
	lf, bf := math.Floor(bb.L/dim), math.Floor(bb.B/dim)
	rf, tf := math.Floor(bb.R/dim), math.Floor(bb.T/dim)

	for _, f := range [...]float64{lf, bf, rf, tf} {
		if math.Abs(f) > maxCellCoord {
			return 0, 0, 0, 0, false
		}
	}
	if (rf-lf+1)*(tf-bf+1) > maxHashedCells {
		return 0, 0, 0, 0, false
	}
	return int(lf), int(bf), int(rf), int(tf), true
}

func (hash *spaceHash) hashHandle(hand int, bb BB) {
	l, b, r, t, ok := hash.cellRange(bb)
	if !ok {
		hash.oversized = append(hash.oversized, hand)
		return
	}

	n := len(hash.table)
	for i := l; i <= r; i++ {
		for j := b; j <= t; j++ {
			idx := hashFunc(i, j, n)
			if slices.Contains(hash.table[idx], hand) {
				continue
			}
			hash.table[idx] = append(hash.table[idx], hand)
		}
	}
}

// Query calls f in ascending order with every handle whose box intersects bb.
func (hash *spaceHash) Query(bb BB, f func(hand int)) {
	hash.stamp++
	var found []int
	visit := func(hand int) {
		if hash.stamps[hand] == hash.stamp {
			return
		}
		hash.stamps[hand] = hash.stamp
		if hash.bbs[hand].Intersects(bb) {
			found = append(found, hand)
		}
	}

	l, b, r, t, ok := hash.cellRange(bb)
	if ok {
		n := len(hash.table)
		for i := l; i <= r; i++ {
			for j := b; j <= t; j++ {
				for _, hand := range hash.table[hashFunc(i, j, n)] {
					visit(hand)
				}
			}
		}
		for _, hand := range hash.oversized {
			visit(hand)
		}
	} else {
		for hand := range hash.bbs {
			visit(hand)
		}
	}

	slices.Sort(found)
	for _, hand := range found {
		f(hand)
	}
}
