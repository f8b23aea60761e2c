package guest

// Classification is the result of splitting the full guest list into
// attendance buckets. The three slices preserve input order and are
// pairwise disjoint; together they cover every input record.
type Classification struct {
	Attending []Record
	Pending   []Record
	Declined  []Record
}

// Classify partitions records by attendance status. It is a pure
// function of the records' Status fields and has no side effects.
func Classify(records []Record) Classification {
	var c Classification
	for _, r := range records {
		switch r.Status {
		case StatusDeclined:
			c.Declined = append(c.Declined, r)
		case StatusPending:
			c.Pending = append(c.Pending, r)
		default:
			c.Attending = append(c.Attending, r)
		}
	}
	return c
}
