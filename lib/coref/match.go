package coref

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// possessiveClitic is the one tokenization skew Match tolerates: NER-based
// mention detection excludes a trailing possessive marker that coreference
// mention detection includes.
const possessiveClitic = "'s"

// Match reports whether an entity mention and a coreference mention cover
// the same span of the shared token store. Tokens are compared by identity,
// not text: both mention kinds are views over the document's single token
// sequence, so equal spans reference the very same *Token values.
//
// The argument order matters. The entity mention may never be longer than
// the coreference mention, and the only tolerated length difference is a
// coreference mention one token longer whose final token is the possessive
// clitic 's.
func Match(d *doc.Document, em *doc.EntityMention, cm *doc.CorefMention) bool {
	emTokens := d.SpanTokens(em.SentNum, em.StartIndex, em.EndIndex)
	cmTokens := d.SpanTokens(cm.SentNum, cm.StartIndex, cm.EndIndex)
	// an empty or out-of-range span never matches anything, not even a
	// lone possessive clitic one token longer
	if len(emTokens) == 0 || len(cmTokens) == 0 {
		return false
	}

	emSize, cmSize := len(emTokens), len(cmTokens)
	diff := cmSize - emSize
	if diff > 1 || diff < -1 {
		return false
	}
	if emSize > cmSize {
		return false
	}
	for i := 0; i < emSize; i++ {
		if emTokens[i] != cmTokens[i] {
			return false
		}
	}
	if diff == 1 {
		return cmTokens[cmSize-1].Text == possessiveClitic
	}
	return true
}
