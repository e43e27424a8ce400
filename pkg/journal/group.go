package journal

// DayGroup is the ordered sublist of entries sharing one display date.
type DayGroup struct {
	Date    string
	Entries []Entry
}

// GroupByDate partitions entries by their display date string. Group order
// follows first appearance in the input and every entry keeps its relative
// position within its group, so a most-recent-first entry list produces
// newest-day groups first. The result is rebuilt in full from the entry
// list on every call; there is no incremental patching to get wrong.
func GroupByDate(entries []Entry) []DayGroup {
	index := make(map[string]int, len(entries))
	groups := make([]DayGroup, 0, len(entries))
	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DayGroup{Date: e.Date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
