package coref

import (
	"sort"

	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// Link is an ordered pair of same-chain mention positions: From is the
// textually later mention (the anaphor), To the earlier one.
type Link struct {
	From doc.Position `json:"from"`
	To   doc.Position `json:"to"`
}

// Links flattens a chain map into the set of ordered mention-pair links
// within each chain. Chains are visited in cluster id order so the output
// is deterministic.
func Links(chains map[int]*doc.CorefChain) []Link {
	ids := make([]int, 0, len(chains))
	for id := range chains {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var links []Link
	for _, id := range ids {
		mentions := chains[id].MentionsInTextualOrder()
		for _, m1 := range mentions {
			for _, m2 := range mentions {
				if m1.Compare(m2) == 1 {
					links = append(links, Link{From: m1.Position(), To: m2.Position()})
				}
			}
		}
	}
	return links
}
