package nhl

// Roster accumulates the distinct player ids referenced by events during
// a run. Ids are kept in first-appearance order and deduplicated; the
// enrichment pass consumes the set once, after all dates are processed.
type Roster struct {
	ids  []int
	seen map[int]bool
}

// NewRoster creates an empty roster accumulator
func NewRoster() *Roster {
	return &Roster{
		seen: make(map[int]bool),
	}
}

// Add records a player id if it has not been seen yet
func (r *Roster) Add(playerID int) {
	if r.seen[playerID] {
		return
	}
	r.seen[playerID] = true
	r.ids = append(r.ids, playerID)
}

// Contains reports whether the id has been recorded
func (r *Roster) Contains(playerID int) bool {
	return r.seen[playerID]
}

// IDs returns the accumulated ids in first-appearance order
func (r *Roster) IDs() []int {
	return r.ids
}

// Len returns the number of distinct ids recorded
func (r *Roster) Len() int {
	return len(r.ids)
}
