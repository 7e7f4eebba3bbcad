package coref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/testhelpers"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		sentence []string
		emSpan   [2]int
		cmSpan   [2]int
		expected bool
	}{
		{
			name:     "identical single token span",
			sentence: []string{"Obama", "spoke", "."},
			emSpan:   [2]int{0, 1},
			cmSpan:   [2]int{0, 1},
			expected: true,
		},
		{
			name:     "identical multi token span",
			sentence: []string{"the", "company", "grew", "."},
			emSpan:   [2]int{0, 2},
			cmSpan:   [2]int{0, 2},
			expected: true,
		},
		{
			name:     "coref span one longer with possessive clitic",
			sentence: []string{"the", "company", "'s", "profits"},
			emSpan:   [2]int{0, 2},
			cmSpan:   [2]int{0, 3},
			expected: true,
		},
		{
			name:     "coref span one longer with non possessive token",
			sentence: []string{"Apple", "Inc", "grew", "."},
			emSpan:   [2]int{0, 1},
			cmSpan:   [2]int{0, 2},
			expected: false,
		},
		{
			name:     "coref span two longer",
			sentence: []string{"the", "big", "company", "'s", "profits"},
			emSpan:   [2]int{0, 2},
			cmSpan:   [2]int{0, 4},
			expected: false,
		},
		{
			name:     "entity span longer than coref span",
			sentence: []string{"the", "company", "grew", "."},
			emSpan:   [2]int{0, 2},
			cmSpan:   [2]int{0, 1},
			expected: false,
		},
		{
			name:     "equal length different tokens",
			sentence: []string{"Apple", "Inc", "grew", "."},
			emSpan:   [2]int{0, 1},
			cmSpan:   [2]int{1, 2},
			expected: false,
		},
		{
			name:     "interior mismatch with trailing possessive",
			sentence: []string{"the", "company", "'s", "profits"},
			emSpan:   [2]int{1, 3},
			cmSpan:   [2]int{0, 3},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testhelpers.Doc(tt.sentence)
			em := &doc.EntityMention{SentNum: 0, StartIndex: tt.emSpan[0], EndIndex: tt.emSpan[1]}
			cm := &doc.CorefMention{SentNum: 0, StartIndex: tt.cmSpan[0], EndIndex: tt.cmSpan[1]}
			assert.Equal(t, tt.expected, Match(d, em, cm))
		})
	}
}

func TestMatchRequiresTokenIdentity(t *testing.T) {
	// equal text in a different sentence is not the same token
	d := testhelpers.Doc(
		[]string{"Obama", "spoke", "."},
		[]string{"Obama", "listened", "."},
	)
	em := &doc.EntityMention{SentNum: 0, StartIndex: 0, EndIndex: 1}
	cm := &doc.CorefMention{SentNum: 1, StartIndex: 0, EndIndex: 1}
	assert.False(t, Match(d, em, cm))
}

func TestMatchInvalidSpans(t *testing.T) {
	d := testhelpers.Doc([]string{"Obama", "spoke", "."})

	em := &doc.EntityMention{SentNum: 0, StartIndex: 0, EndIndex: 1}
	outOfRange := &doc.CorefMention{SentNum: 3, StartIndex: 0, EndIndex: 1}
	assert.False(t, Match(d, em, outOfRange))

	empty := &doc.CorefMention{SentNum: 0, StartIndex: 1, EndIndex: 1}
	assert.False(t, Match(d, em, empty))
}

func TestMatchEmptyEntitySpanAgainstLoneClitic(t *testing.T) {
	// an empty entity span never matches, even though the length skew and
	// trailing 's would satisfy the possessive rule on their own
	d := testhelpers.Doc([]string{"Acme", "'s", "profits"})
	em := &doc.EntityMention{SentNum: 0, StartIndex: 1, EndIndex: 1}
	cm := &doc.CorefMention{SentNum: 0, StartIndex: 1, EndIndex: 2}
	assert.False(t, Match(d, em, cm))
}
