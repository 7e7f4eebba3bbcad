// Package testhelpers builds documents for tests without going through the
// tokenizer, so spans and tags are exactly what a test says they are.
package testhelpers

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

// Doc builds a document from sentences given as token text slices.
func Doc(sentences ...[]string) *doc.Document {
	d := doc.New("")
	for _, words := range sentences {
		sentence := &doc.Sentence{}
		for _, w := range words {
			sentence.Tokens = append(sentence.Tokens, doc.NewToken(w))
		}
		d.AddSentence(sentence)
	}
	return d
}

// Tag sets the fine and coarse NER tags on a token span of one sentence and
// loads the fine tag into the primary slot, the state upstream NER leaves a
// document in.
func Tag(d *doc.Document, sentNum, start, end int, fine, coarse string) {
	for _, tok := range d.SpanTokens(sentNum, start, end) {
		tok.FineNER = fine
		tok.CoarseNER = coarse
		tok.NER = fine
	}
}

// EntityMention adds an entity mention over a token span and returns its
// document-wide index.
func EntityMention(d *doc.Document, sentNum, start, end int, entityType string) int {
	return d.AddEntityMention(&doc.EntityMention{
		SentNum:    sentNum,
		StartIndex: start,
		EndIndex:   end,
		Type:       entityType,
	})
}

// CorefMention adds a coreference mention over a token span and returns its
// document-wide index.
func CorefMention(d *doc.Document, sentNum, start, end, clusterID int) int {
	return d.AddCorefMention(&doc.CorefMention{
		SentNum:    sentNum,
		StartIndex: start,
		EndIndex:   end,
		ClusterID:  clusterID,
	})
}

// Chain installs a chain for a cluster id. Mention spans are given in the
// 0-based half-open convention and converted to chain records; the
// representative is selected by repIdx into mentions.
func Chain(d *doc.Document, clusterID int, repIdx int, mentions ...*doc.CorefMention) *doc.CorefChain {
	chain := &doc.CorefChain{ClusterID: clusterID}
	for _, cm := range mentions {
		chain.Mentions = append(chain.Mentions, ChainMention(d, cm))
	}
	chain.Representative = chain.Mentions[repIdx]
	d.Chains[clusterID] = chain
	return chain
}

// ChainMention converts a coreference mention to the 1-based inclusive
// chain record convention.
func ChainMention(d *doc.Document, cm *doc.CorefMention) doc.ChainMention {
	return doc.ChainMention{
		SentNum:    cm.SentNum + 1,
		StartIndex: cm.StartIndex + 1,
		EndIndex:   cm.EndIndex,
	}
}
