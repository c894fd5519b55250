package arena

// SizeInUse returns the number of bytes currently allocated in the arena.
// This includes padding inserted for alignment.
func (a *Arena) SizeInUse() int { return a.offset }

// Peak returns the highest cursor position reached since the arena was last
// bound. Reset does not lower it.
func (a *Arena) Peak() int { return a.peak }

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena is unbound.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Peak:        a.Peak(),
		Alignment:   a.Alignment(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	Remaining   int     // Bytes after the cursor
	Peak        int     // High-water mark of SizeInUse since Bind
	Alignment   int     // Alignment granularity
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
