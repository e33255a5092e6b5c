package rules

import (
	"sync"
)

// parallelThreshold is the corpus size above which Match shards the work
// across goroutines. Small corpora are cheaper to scan sequentially.
const parallelThreshold = 512

// matchChunk is the number of rules each goroutine evaluates.
const matchChunk = 256

// Matches reports whether the condition is satisfied by the subject.
// Clauses are conjoined and short-circuit on the first failure; an absent
// clause never excludes. The predicate is pure: the same corpus and subject
// always yield the same matched set.
func (c Condition) Matches(s Subject) bool {
	if c.AreaMin != nil && s.Area < *c.AreaMin {
		return false
	}
	if c.AreaMax != nil && s.Area > *c.AreaMax {
		return false
	}
	if c.SeatsMin != nil && s.Seats < *c.SeatsMin {
		return false
	}
	if c.SeatsMax != nil && s.Seats > *c.SeatsMax {
		return false
	}
	if c.FeaturesAny != nil && !anyFeature(c.FeaturesAny, s) {
		return false
	}
	if c.FeaturesAll != nil && !allFeatures(c.FeaturesAll, s) {
		return false
	}
	return true
}

func anyFeature(tags []string, s Subject) bool {
	for _, tag := range tags {
		if s.HasFeature(tag) {
			return true
		}
	}
	return false
}

func allFeatures(tags []string, s Subject) bool {
	for _, tag := range tags {
		if !s.HasFeature(tag) {
			return false
		}
	}
	return true
}

// Match returns the ordered subsequence of corpus rules whose condition the
// subject satisfies. It is a stable filter: relative corpus order is
// preserved, which is the only defined checklist tie-break.
func Match(corpus []Rule, s Subject) []Rule {
	if len(corpus) >= parallelThreshold {
		return matchParallel(corpus, s)
	}
	return matchSequential(corpus, s)
}

func matchSequential(corpus []Rule, s Subject) []Rule {
	matched := make([]Rule, 0, len(corpus))
	for _, r := range corpus {
		if r.If.Matches(s) {
			matched = append(matched, r)
		}
	}
	return matched
}

// matchParallel evaluates the predicate across fixed-size chunks. Each
// goroutine writes only its own slice of the hits array, so no coordination
// is needed beyond the final ordered reassembly.
func matchParallel(corpus []Rule, s Subject) []Rule {
	hits := make([]bool, len(corpus))

	var wg sync.WaitGroup
	for start := 0; start < len(corpus); start += matchChunk {
		end := min(start+matchChunk, len(corpus))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				hits[i] = corpus[i].If.Matches(s)
			}
		}(start, end)
	}
	wg.Wait()

	matched := make([]Rule, 0, len(corpus))
	for i, hit := range hits {
		if hit {
			matched = append(matched, corpus[i])
		}
	}
	return matched
}
