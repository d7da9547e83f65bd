package ui

// Area is an inclusive pixel rectangle, the unit of invalidation and flush.
type Area struct {
	X1, Y1, X2, Y2 int
}

var emptyArea = Area{X1: 0, Y1: 0, X2: -1, Y2: -1}

func (a Area) Width() int  { return a.X2 - a.X1 + 1 }
func (a Area) Height() int { return a.Y2 - a.Y1 + 1 }

func (a Area) Empty() bool { return a.X2 < a.X1 || a.Y2 < a.Y1 }

func (a Area) Contains(x, y int) bool {
	return x >= a.X1 && x <= a.X2 && y >= a.Y1 && y <= a.Y2
}

// Union returns the smallest area covering both a and b.
func (a Area) Union(b Area) Area {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	if b.X1 < a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 < a.Y1 {
		a.Y1 = b.Y1
	}
	if b.X2 > a.X2 {
		a.X2 = b.X2
	}
	if b.Y2 > a.Y2 {
		a.Y2 = b.Y2
	}
	return a
}

// Intersect clips a to b. The result may be empty.
func (a Area) Intersect(b Area) Area {
	if b.X1 > a.X1 {
		a.X1 = b.X1
	}
	if b.Y1 > a.Y1 {
		a.Y1 = b.Y1
	}
	if b.X2 < a.X2 {
		a.X2 = b.X2
	}
	if b.Y2 < a.Y2 {
		a.Y2 = b.Y2
	}
	return a
}
