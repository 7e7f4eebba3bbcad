package doc

// EntityMention is a contiguous token span typed by named entity category,
// produced by the upstream mention detector. StartIndex/EndIndex are 0-based
// half-open token offsets within the sentence. CanonicalIdx is NoMention
// until the canonicalization pass links the mention to the entity mention
// representing its coreference chain.
type EntityMention struct {
	Index        int    `json:"index"`
	SentNum      int    `json:"sent_num"`
	StartIndex   int    `json:"start_index"`
	EndIndex     int    `json:"end_index"`
	Type         string `json:"type,omitempty"`
	CanonicalIdx int    `json:"canonical_idx"`
}

// CorefMention is a candidate entity reference produced by the coreference
// engine. Offsets follow the same 0-based half-open convention as
// EntityMention so both can slice the shared token store.
type CorefMention struct {
	Index      int `json:"index"`
	SentNum    int `json:"sent_num"`
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
	ClusterID  int `json:"cluster_id"`
}

// ChainMention is a mention as recorded inside a chain. Unlike CorefMention
// its SentNum, StartIndex and EndIndex are 1-based inclusive coordinates.
// The two conventions coexist deliberately: chain records, including each
// chain's representative mention, are produced under the engine's own
// numbering and consumers must subtract one before indexing the token store.
type ChainMention struct {
	SentNum    int    `json:"sent_num"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	Span       string `json:"span,omitempty"`
}

// Compare orders chain mentions by (sentence, start offset): -1 when m is
// strictly before other, 1 when strictly after, 0 otherwise.
func (m ChainMention) Compare(other ChainMention) int {
	if m.SentNum < other.SentNum {
		return -1
	}
	if m.SentNum > other.SentNum {
		return 1
	}
	if m.StartIndex < other.StartIndex {
		return -1
	}
	if m.StartIndex > other.StartIndex {
		return 1
	}
	return 0
}

// Position identifies a chain mention by its 1-based sentence number and
// start offset, the pair exported in chain links.
type Position struct {
	SentNum    int `json:"sent_num"`
	StartIndex int `json:"start_index"`
}

func (m ChainMention) Position() Position {
	return Position{SentNum: m.SentNum, StartIndex: m.StartIndex}
}

// CorefChain is a cluster of coreference mentions believed to denote the
// same referent. Mentions holds the chain's mentions in textual order;
// Representative is the mention chosen to stand for the chain.
type CorefChain struct {
	ClusterID      int            `json:"cluster_id"`
	Mentions       []ChainMention `json:"mentions"`
	Representative ChainMention   `json:"representative"`
}

// MentionsInTextualOrder returns the chain's mentions ordered by the
// ChainMention comparator.
func (c *CorefChain) MentionsInTextualOrder() []ChainMention {
	return c.Mentions
}

// RepresentativeMention returns the chain's designated representative.
func (c *CorefChain) RepresentativeMention() ChainMention {
	return c.Representative
}
