package domain

// CodeReport is the outcome of a unique code audit or repair. Each slice
// holds client ids.
type CodeReport struct {
	Checked    int
	Missing    []int64
	Mismatched []int64
	Repaired   []int64
}

// Inconsistent is the number of clients whose code is missing or does not
// embed their owner.
func (r CodeReport) Inconsistent() int {
	return len(r.Missing) + len(r.Mismatched)
}
