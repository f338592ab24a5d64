package mask

import "sort"

// Pick chooses which mask the applicator should run. With no
// alternatives the primary is returned without any scoring work.
//
// Otherwise every candidate is scored with the strategy (WholeString
// when nil) and ranked: alternatives sort by affinity descending with
// ties keeping declaration order, and the primary is inserted before
// the first alternative whose affinity does not strictly exceed its
// own. The primary therefore wins ties and wins whenever no alternative
// strictly outscores it; among alternatives that do, the highest-scoring
// earliest-declared one wins.
func Pick(primary *Mask, alternatives []*Mask, input CaretString, strategy Strategy) *Mask {
	if len(alternatives) == 0 {
		return primary
	}
	if strategy == nil {
		strategy = WholeString{}
	}

	primaryAffinity := strategy.Score(primary, input)

	type scored struct {
		mask     *Mask
		affinity int
	}
	ranked := make([]scored, 0, len(alternatives)+1)
	for _, alt := range alternatives {
		ranked = append(ranked, scored{mask: alt, affinity: strategy.Score(alt, input)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].affinity > ranked[j].affinity
	})

	at := len(ranked)
	for i, sc := range ranked {
		if sc.affinity <= primaryAffinity {
			at = i
			break
		}
	}
	ranked = append(ranked, scored{})
	copy(ranked[at+1:], ranked[at:])
	ranked[at] = scored{mask: primary, affinity: primaryAffinity}

	return ranked[0].mask
}
