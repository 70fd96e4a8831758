package domain

// Lane is a named recurring corridor between two known places. Lanes are
// seeded reference data; their distance/cost/duration figures are computed
// fresh by the estimator whenever they are served.
type Lane struct {
	LaneID      int
	Name        string
	Origin      Place
	Destination Place
}
