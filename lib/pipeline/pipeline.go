/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package pipeline defines the contract every annotation stage exposes to
// the scheduler: the document attributes it requires to be present and the
// attributes it guarantees to produce. The scheduler treats all stages
// uniformly through the Annotator interface.
package pipeline

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// Attr is a well-known document attribute key.
type Attr string

const (
	AttrText          Attr = "text"
	AttrTokens        Attr = "tokens"
	AttrCharOffsetBeg Attr = "char_offset_begin"
	AttrCharOffsetEnd Attr = "char_offset_end"
	AttrTokenIndex    Attr = "token_index"
	AttrTokenValue    Attr = "token_value"
	AttrSentences     Attr = "sentences"
	AttrSentenceIndex Attr = "sentence_index"
	AttrPOS           Attr = "pos"
	AttrLemma         Attr = "lemma"
	AttrNER           Attr = "ner"
	AttrCoarseNER     Attr = "coarse_ner"
	AttrFineNER       Attr = "fine_ner"
	AttrBasicDeps     Attr = "basic_dependencies"
	AttrEnhancedDeps  Attr = "enhanced_dependencies"
	AttrParseTree     Attr = "parse_tree"
	AttrCategory      Attr = "category"
	AttrCorefMentions Attr = "coref_mentions"
	AttrCorefChains   Attr = "coref_chains"
)

// AttrSet is a set of attribute keys.
type AttrSet map[Attr]struct{}

func NewAttrSet(attrs ...Attr) AttrSet {
	s := make(AttrSet, len(attrs))
	for _, a := range attrs {
		s[a] = struct{}{}
	}
	return s
}

func (s AttrSet) Contains(a Attr) bool {
	_, ok := s[a]
	return ok
}

// Add inserts attrs and returns the receiver for chaining.
func (s AttrSet) Add(attrs ...Attr) AttrSet {
	for _, a := range attrs {
		s[a] = struct{}{}
	}
	return s
}

// Missing returns the attributes in s absent from satisfied.
func (s AttrSet) Missing(satisfied AttrSet) []Attr {
	var missing []Attr
	for a := range s {
		if !satisfied.Contains(a) {
			missing = append(missing, a)
		}
	}
	return missing
}

// Annotator is a single annotation stage.
type Annotator interface {
	// Annotate mutates the document in place.
	Annotate(d *doc.Document) error
	// Requires returns the attributes that must already be present.
	Requires() AttrSet
	// RequirementsSatisfied returns the attributes this stage produces.
	RequirementsSatisfied() AttrSet
}

// Pipeline runs annotators in order, verifying before each stage that its
// requirements are covered by the initial attributes plus everything
// produced by earlier stages.
type Pipeline struct {
	annotators []Annotator
	satisfied  AttrSet
}

// New returns a pipeline whose documents arrive with the given attributes
// already populated by upstream processing.
func New(initial AttrSet) *Pipeline {
	satisfied := NewAttrSet()
	for a := range initial {
		satisfied.Add(a)
	}
	return &Pipeline{satisfied: satisfied}
}

// AddAnnotator appends a stage. Returns an error when the stage's
// requirements cannot be met at its position in the pipeline.
func (p *Pipeline) AddAnnotator(a Annotator) error {
	if missing := a.Requires().Missing(p.satisfied); len(missing) > 0 {
		return fmt.Errorf("annotator requirements not satisfied: %v", missing)
	}
	p.annotators = append(p.annotators, a)
	for attr := range a.RequirementsSatisfied() {
		p.satisfied.Add(attr)
	}
	return nil
}

// Annotate runs every stage over the document in order. The first stage
// error aborts the run.
func (p *Pipeline) Annotate(d *doc.Document) error {
	for i, a := range p.annotators {
		if err := a.Annotate(d); err != nil {
			log.Error().Err(err).Int("stage", i).Msg("annotation stage failed")
			return err
		}
	}
	return nil
}
