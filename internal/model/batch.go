package model

// Batch is the buffered sequence of lines being processed.
//
// A line is the content of one input record with its terminator stripped.
// Everything else (leading, trailing and internal whitespace) is kept
// verbatim.
type Batch struct {
	// Lines is the current sequence, in its current order.
	// Steps replace or reorder it in place.
	Lines []string

	// InputCount is the number of lines the batch started with.
	InputCount int

	// BlankDropped counts lines removed because they were blank.
	BlankDropped int

	// DuplicatesDropped counts lines removed because an earlier line in the
	// sequence had the same comparison key.
	DuplicatesDropped int

	// PerformedSteps lists the names of the steps applied, in order.
	PerformedSteps []string
}

// NewBatch creates a Batch holding lines.
// The slice is owned by the batch from this point on.
func NewBatch(lines []string) *Batch {
	return &Batch{
		Lines:          lines,
		InputCount:     len(lines),
		PerformedSteps: make([]string, 0),
	}
}

// Len returns the number of lines currently in the batch.
func (b *Batch) Len() int {
	return len(b.Lines)
}

// Dropped returns the total number of lines removed so far.
func (b *Batch) Dropped() int {
	return b.BlankDropped + b.DuplicatesDropped
}

// Balanced reports whether every input line is accounted for: either still
// in Lines or counted as dropped.
func (b *Batch) Balanced() bool {
	return b.Len()+b.Dropped() == b.InputCount
}
