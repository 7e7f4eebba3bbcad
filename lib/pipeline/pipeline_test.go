package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

type stage struct {
	requires  AttrSet
	satisfies AttrSet
	err       error
	calls     int
}

func (s *stage) Annotate(d *doc.Document) error {
	s.calls++
	return s.err
}

func (s *stage) Requires() AttrSet              { return s.requires }
func (s *stage) RequirementsSatisfied() AttrSet { return s.satisfies }

func TestAttrSet(t *testing.T) {
	s := NewAttrSet(AttrTokens, AttrSentences)
	assert.True(t, s.Contains(AttrTokens))
	assert.False(t, s.Contains(AttrNER))

	s.Add(AttrNER)
	assert.True(t, s.Contains(AttrNER))

	missing := NewAttrSet(AttrTokens, AttrParseTree).Missing(s)
	assert.Equal(t, []Attr{AttrParseTree}, missing)
}

func TestAddAnnotatorRejectsUnmetRequirements(t *testing.T) {
	p := New(NewAttrSet(AttrTokens))
	err := p.AddAnnotator(&stage{
		requires:  NewAttrSet(AttrTokens, AttrNER),
		satisfies: NewAttrSet(AttrCorefChains),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), string(AttrNER))
}

func TestAddAnnotatorChainsSatisfiedAttributes(t *testing.T) {
	p := New(NewAttrSet(AttrTokens))

	assert.NoError(t, p.AddAnnotator(&stage{
		requires:  NewAttrSet(AttrTokens),
		satisfies: NewAttrSet(AttrNER),
	}))
	// second stage leans on the first stage's output
	assert.NoError(t, p.AddAnnotator(&stage{
		requires:  NewAttrSet(AttrTokens, AttrNER),
		satisfies: NewAttrSet(AttrCorefChains),
	}))
}

func TestAnnotateRunsStagesInOrder(t *testing.T) {
	p := New(NewAttrSet(AttrTokens))
	first := &stage{requires: NewAttrSet(AttrTokens), satisfies: NewAttrSet(AttrNER)}
	second := &stage{requires: NewAttrSet(AttrNER), satisfies: NewAttrSet(AttrCorefChains)}
	assert.NoError(t, p.AddAnnotator(first))
	assert.NoError(t, p.AddAnnotator(second))

	assert.NoError(t, p.Annotate(doc.New("")))
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestAnnotateAbortsOnStageError(t *testing.T) {
	p := New(NewAttrSet(AttrTokens))
	first := &stage{requires: NewAttrSet(AttrTokens), satisfies: NewAttrSet(AttrNER), err: assert.AnError}
	second := &stage{requires: NewAttrSet(AttrNER), satisfies: NewAttrSet(AttrCorefChains)}
	assert.NoError(t, p.AddAnnotator(first))
	assert.NoError(t, p.AddAnnotator(second))

	assert.Equal(t, assert.AnError, p.Annotate(doc.New("")))
	assert.Equal(t, 0, second.calls)
}
