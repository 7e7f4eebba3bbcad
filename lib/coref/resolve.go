package coref

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// Canonicalize links each entity mention to the entity mention representing
// its coreference chain by writing CanonicalIdx. A mention with no
// coreference link, or whose span the two detectors disagree on, is left
// unresolved: that is a normal per-mention outcome, never an error. The pass
// is a single scan over the entity mentions in document order and is
// idempotent.
func Canonicalize(d *doc.Document) {
	for _, em := range d.EntityMentions {
		emTokens := d.SpanTokens(em.SentNum, em.StartIndex, em.EndIndex)
		if len(emTokens) == 0 {
			continue
		}

		// mentions of some categories, e.g. "now", carry no coref link
		cmIdx := emTokens[0].CorefMentionIdx
		if cmIdx == doc.NoMention {
			continue
		}
		cm := d.CorefMention(cmIdx)
		if cm == nil {
			continue
		}
		chain := d.Chain(cm.ClusterID)
		if chain == nil {
			continue
		}
		if !Match(d, em, cm) {
			continue
		}

		// chain records use 1-based inclusive coordinates
		rep := chain.RepresentativeMention()
		repSentence := d.Sentence(rep.SentNum - 1)
		if repSentence == nil || rep.StartIndex < 1 || rep.StartIndex > len(repSentence.Tokens) {
			continue
		}
		repFirstToken := repSentence.Tokens[rep.StartIndex-1]

		repEmIdx := repFirstToken.EntityMentionIdx
		if repEmIdx == doc.NoMention {
			continue
		}
		repEm := d.EntityMention(repEmIdx)
		repCm := d.CorefMention(repFirstToken.CorefMentionIdx)
		if repEm == nil || repCm == nil {
			continue
		}

		// the representative must itself align cleanly with an entity
		// mention before the chain is trusted for canonicalization
		if Match(d, repEm, repCm) {
			em.CanonicalIdx = repEmIdx
		}
	}
}
