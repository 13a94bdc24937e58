package common

// Interval has no total order: a month is not a fixed number of
// days. Relational comparison on it is rejected at dispatch.
type Interval struct {
	Months int32
	Days   int32
	Micros int32
}

func (i *Interval) Equal(o *Interval) bool {
	return i.Months == o.Months &&
		i.Days == o.Days &&
		i.Micros == o.Micros
}
