package coref

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// Granularity names a source of named entity tags on a token.
type Granularity string

const (
	GranularityFine    Granularity = "fine"
	GranularityCoarse  Granularity = "coarse"
	GranularityPrimary Granularity = "primary"
)

// setPrimaryTag overwrites each token's primary NER tag from the named
// granularity's tag. Empty source tags leave the primary tag untouched.
func setPrimaryTag(d *doc.Document, g Granularity) {
	for _, sentence := range d.Sentences {
		for _, tok := range sentence.Tokens {
			var source string
			switch g {
			case GranularityFine:
				source = tok.FineNER
			case GranularityCoarse:
				source = tok.CoarseNER
			default:
				source = tok.NER
			}
			if source != "" {
				tok.NER = source
			}
		}
	}
}

// WithPrimaryTag runs body with every token's primary NER tag loaded from
// the given granularity, then restores the fine-grained tags. The restore
// runs on every exit path, including a panic inside body: the coreference
// engine reads only the primary tag, and downstream stages expect the
// fine-grained tags back afterwards.
func WithPrimaryTag(d *doc.Document, g Granularity, body func() error) error {
	setPrimaryTag(d, g)
	defer setPrimaryTag(d, GranularityFine)
	return body()
}
