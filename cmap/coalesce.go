package cmap

import "sort"

// MinChars is the minimum span a Direct entry must cover to survive
// coalescing; shorter runs are absorbed into one trailing Scan entry, which
// is cheaper than several small Direct entries once each costs its own
// block header.
const MinChars = 7

// Coalesce merges every Direct entry shorter than MinChars into a single
// Scan entry spanning their combined range, leaving longer Direct entries
// (and any pre-existing Table/Scan entries) untouched.
func Coalesce(list []Entry) []Entry {
	kept := make([]Entry, 0, len(list))
	var scan []ScanPair
	minBegin := NoGlyph
	var maxEnd uint16

	for _, e := range list {
		direct, ok := e.Data.(Direct)
		span := int(e.CodeEnd) - int(e.CodeBegin) + 1
		if !ok || span >= MinChars {
			kept = append(kept, e)
			continue
		}

		if e.CodeBegin < minBegin {
			minBegin = e.CodeBegin
		}
		if e.CodeEnd > maxEnd {
			maxEnd = e.CodeEnd
		}
		for c := e.CodeBegin; ; c++ {
			scan = append(scan, ScanPair{Code: c, Index: c - e.CodeBegin + direct.Offset})
			if c == e.CodeEnd {
				break
			}
		}
	}

	if len(scan) == 0 {
		return kept
	}

	sort.Slice(scan, func(i, j int) bool { return scan[i].Code < scan[j].Code })
	kept = append(kept, Entry{CodeBegin: minBegin, CodeEnd: maxEnd, Data: Scan{Entries: scan}})
	return kept
}
