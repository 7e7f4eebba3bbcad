// Package rule is a deterministic in-process coreference engine. Mentions
// sharing a normalized surface form (possessive clitic stripped) are
// clustered together; pronouns are left in singleton chains. Each chain's
// representative is its longest mention, earliest on ties.
package rule

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/coref/system"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/lexicon"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/text"
)

func New(lex *lexicon.Lexicon) system.System {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &engine{lexicon: lex}
}

type engine struct {
	lexicon *lexicon.Lexicon
}

// Annotate rebuilds the chain map from the document's coreference mention
// inventory. Cluster ids are assigned in first-mention order, so repeated
// runs over the same document produce identical chains.
func (e *engine) Annotate(d *doc.Document) error {
	var keys []string
	groups := map[string][]*doc.CorefMention{}
	for _, cm := range d.CorefMentions {
		key := e.clusterKey(d, cm)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], cm)
	}

	d.Chains = map[int]*doc.CorefChain{}
	clusterID := 1
	for _, key := range keys {
		chain := &doc.CorefChain{ClusterID: clusterID}
		for _, cm := range groups[key] {
			cm.ClusterID = clusterID
			chain.Mentions = append(chain.Mentions, chainMention(d, cm))
		}
		sort.Slice(chain.Mentions, func(i, j int) bool {
			return chain.Mentions[i].Compare(chain.Mentions[j]) < 0
		})
		chain.Representative = representative(chain.Mentions)
		d.Chains[clusterID] = chain
		clusterID++
	}
	return nil
}

// clusterKey normalizes a mention's surface form. Pronouns get a key unique
// to the mention so they never cluster by string identity.
func (e *engine) clusterKey(d *doc.Document, cm *doc.CorefMention) string {
	tokens := d.SpanTokens(cm.SentNum, cm.StartIndex, cm.EndIndex)
	if len(tokens) == 1 && e.lexicon.IsPronoun(tokens[0].Text) {
		return fmt.Sprintf("pronoun#%d", cm.Index)
	}
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, text.Key(tok.Text))
	}
	if len(parts) > 1 && parts[len(parts)-1] == "'s" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}

// chainMention converts a mention to the chain record convention: 1-based
// inclusive coordinates.
func chainMention(d *doc.Document, cm *doc.CorefMention) doc.ChainMention {
	tokens := d.SpanTokens(cm.SentNum, cm.StartIndex, cm.EndIndex)
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Text)
	}
	return doc.ChainMention{
		SentNum:    cm.SentNum + 1,
		StartIndex: cm.StartIndex + 1,
		EndIndex:   cm.EndIndex,
		Span:       strings.Join(parts, " "),
	}
}

func representative(mentions []doc.ChainMention) doc.ChainMention {
	rep := mentions[0]
	repLen := rep.EndIndex - rep.StartIndex
	for _, m := range mentions[1:] {
		if l := m.EndIndex - m.StartIndex; l > repLen {
			rep = m
			repLen = l
		}
	}
	return rep
}
