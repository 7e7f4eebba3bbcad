package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

func TestKey(t *testing.T) {
	assert.Equal(t, Key("Obama spoke."), Key("Obama spoke."))
	assert.NotEqual(t, Key("Obama spoke."), Key("Obama left."))
	assert.Len(t, Key(""), 64)
}

func TestCopyDetachesMentionsAndChains(t *testing.T) {
	entry := &Entry{
		CorefMentions: []*doc.CorefMention{{Index: 0, SentNum: 0, StartIndex: 0, EndIndex: 1, ClusterID: 1}},
		Chains: map[int]*doc.CorefChain{
			1: {
				ClusterID:      1,
				Mentions:       []doc.ChainMention{{SentNum: 1, StartIndex: 1, EndIndex: 1, Span: "Obama"}},
				Representative: doc.ChainMention{SentNum: 1, StartIndex: 1, EndIndex: 1, Span: "Obama"},
			},
		},
	}

	cp := entry.Copy()

	assert.Equal(t, entry, cp)
	assert.NotSame(t, entry.CorefMentions[0], cp.CorefMentions[0])
	assert.NotSame(t, entry.Chains[1], cp.Chains[1])

	// back-pointer rewrites on the copy never reach the original
	cp.CorefMentions[0].Index = 7
	cp.Chains[1].Mentions[0].Span = "changed"
	assert.Equal(t, 0, entry.CorefMentions[0].Index)
	assert.Equal(t, "Obama", entry.Chains[1].Mentions[0].Span)
}

func TestCopyEmptyEntry(t *testing.T) {
	cp := (&Entry{}).Copy()
	assert.Nil(t, cp.CorefMentions)
	assert.Nil(t, cp.Chains)
}
