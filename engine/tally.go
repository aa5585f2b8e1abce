package engine

// hitRecord tracks one distinct hit string.
type hitRecord struct {
	count     uint64
	firstSeen uint64 // global trial index of the first hit
}

// tally is the worker-private hit ledger. It is mutated by exactly one
// worker and read only after that worker's Done event, so the hot path
// needs no locking.
type tally struct {
	counts    map[string]*hitRecord
	hits      uint64
	processed uint64
}

func newTally() *tally {
	return &tally{counts: make(map[string]*hitRecord)}
}

func (t *tally) add(chars string, index uint64) {
	if rec, ok := t.counts[chars]; ok {
		rec.count++
		if index < rec.firstSeen {
			rec.firstSeen = index
		}
	} else {
		t.counts[chars] = &hitRecord{count: 1, firstSeen: index}
	}
	t.hits++
}

// merge folds src into dst. Counts sum; first-seen indexes take the
// minimum. The operation is commutative and associative over a set of
// tallies, which is what makes the final result independent of worker
// interleaving.
func merge(dst map[string]*hitRecord, src *tally) {
	for chars, rec := range src.counts {
		if m, ok := dst[chars]; ok {
			m.count += rec.count
			if rec.firstSeen < m.firstSeen {
				m.firstSeen = rec.firstSeen
			}
		} else {
			dst[chars] = &hitRecord{count: rec.count, firstSeen: rec.firstSeen}
		}
	}
}
