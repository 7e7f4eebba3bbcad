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

// Package doc holds the in-memory document model shared by all annotation
// stages: the token store, sentence segmentation, and the two mention
// inventories (entity mentions and coreference mentions). Mentions never own
// tokens; they reference spans of the shared token store, and tokens point
// back at their owning mentions through plain indices into the document-level
// mention sequences.
package doc

// NoMention marks an unset mention back-pointer or canonical index.
const NoMention = -1

// Token is a single token with its per-token annotations. NER is the primary
// named entity tag, the slot read by the coreference engine; FineNER and
// CoarseNER are the two source granularities it can be loaded from.
// EntityMentionIdx and CorefMentionIdx index into the document's mention
// sequences. A token belongs to at most one mention of each kind.
type Token struct {
	Text             string `json:"text"`
	CharBegin        int    `json:"char_begin"`
	CharEnd          int    `json:"char_end"`
	POS              string `json:"pos,omitempty"`
	Lemma            string `json:"lemma,omitempty"`
	Speaker          string `json:"speaker,omitempty"`
	NER              string `json:"ner,omitempty"`
	FineNER          string `json:"fine_ner,omitempty"`
	CoarseNER        string `json:"coarse_ner,omitempty"`
	EntityMentionIdx int    `json:"entity_mention_idx"`
	CorefMentionIdx  int    `json:"coref_mention_idx"`
}

// NewToken returns a token with both mention back-pointers unset.
func NewToken(text string) *Token {
	return &Token{
		Text:             text,
		EntityMentionIdx: NoMention,
		CorefMentionIdx:  NoMention,
	}
}

// Sentence is an ordered token sequence. Tokens are shared with the document
// and with any mention spanning them.
type Sentence struct {
	Tokens []*Token `json:"tokens"`
}

// Document owns the sentence sequence, both mention sequences and the
// coreference chain map. It is created empty and populated incrementally by
// upstream stages and the coreference engine.
type Document struct {
	Text            string              `json:"text,omitempty"`
	Sentences       []*Sentence         `json:"sentences"`
	EntityMentions  []*EntityMention    `json:"entity_mentions,omitempty"`
	CorefMentions   []*CorefMention     `json:"coref_mentions,omitempty"`
	Chains          map[int]*CorefChain `json:"chains,omitempty"`
	MarkedDiscourse bool                `json:"marked_discourse,omitempty"`
}

func New(text string) *Document {
	return &Document{
		Text:   text,
		Chains: map[int]*CorefChain{},
	}
}

// Sentence returns the 0-indexed sentence, or nil when out of range.
func (d *Document) Sentence(i int) *Sentence {
	if i < 0 || i >= len(d.Sentences) {
		return nil
	}
	return d.Sentences[i]
}

// EntityMention returns the entity mention with the given document-wide
// index, or nil when out of range.
func (d *Document) EntityMention(i int) *EntityMention {
	if i < 0 || i >= len(d.EntityMentions) {
		return nil
	}
	return d.EntityMentions[i]
}

// CorefMention returns the coreference mention with the given document-wide
// index, or nil when out of range.
func (d *Document) CorefMention(i int) *CorefMention {
	if i < 0 || i >= len(d.CorefMentions) {
		return nil
	}
	return d.CorefMentions[i]
}

// Chain returns the coreference chain for a cluster id, or nil.
func (d *Document) Chain(clusterID int) *CorefChain {
	return d.Chains[clusterID]
}

// AddSentence appends a sentence and returns its index.
func (d *Document) AddSentence(s *Sentence) int {
	d.Sentences = append(d.Sentences, s)
	return len(d.Sentences) - 1
}

// AddEntityMention appends an entity mention, assigns its document-wide
// index and writes the back-pointer onto every spanned token.
func (d *Document) AddEntityMention(m *EntityMention) int {
	m.Index = len(d.EntityMentions)
	m.CanonicalIdx = NoMention
	d.EntityMentions = append(d.EntityMentions, m)
	for _, tok := range d.SpanTokens(m.SentNum, m.StartIndex, m.EndIndex) {
		tok.EntityMentionIdx = m.Index
	}
	return m.Index
}

// AddCorefMention appends a coreference mention, assigns its document-wide
// index and writes the back-pointer onto every spanned token.
func (d *Document) AddCorefMention(m *CorefMention) int {
	m.Index = len(d.CorefMentions)
	d.CorefMentions = append(d.CorefMentions, m)
	for _, tok := range d.SpanTokens(m.SentNum, m.StartIndex, m.EndIndex) {
		tok.CorefMentionIdx = m.Index
	}
	return m.Index
}

// SetCorefInventory replaces the coreference mention sequence and chain map
// wholesale, rewriting every token's coreference back-pointer. Mentions must
// arrive in document-wide index order.
func (d *Document) SetCorefInventory(mentions []*CorefMention, chains map[int]*CorefChain) {
	for _, sentence := range d.Sentences {
		for _, tok := range sentence.Tokens {
			tok.CorefMentionIdx = NoMention
		}
	}
	d.CorefMentions = nil
	for _, m := range mentions {
		d.AddCorefMention(m)
	}
	d.Chains = chains
	if d.Chains == nil {
		d.Chains = map[int]*CorefChain{}
	}
}

// SpanTokens slices tokens [start, end) out of the given sentence. Offsets
// are 0-based half-open. Returns nil when the span does not fit the sentence.
func (d *Document) SpanTokens(sentNum, start, end int) []*Token {
	sentence := d.Sentence(sentNum)
	if sentence == nil || start < 0 || end > len(sentence.Tokens) || start > end {
		return nil
	}
	return sentence.Tokens[start:end]
}
