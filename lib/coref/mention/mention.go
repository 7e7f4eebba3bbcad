// Package mention implements inline coreference mention detection, used
// when no upstream stage supplies the coreference mention inventory.
// Candidate mentions are contiguous runs of one primary NER tag, extended
// over a trailing possessive clitic, plus pronouns from the lexicon.
package mention

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/lexicon"
)

type Annotator struct {
	lexicon *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Annotator {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Annotator{lexicon: lex}
}

// Annotate scans each sentence and appends coreference mentions to the
// document. Tokens already owned by a coreference mention are never claimed
// again, so re-running over an annotated document is a no-op.
func (a *Annotator) Annotate(d *doc.Document) error {
	for sentNum, sentence := range d.Sentences {
		tokens := sentence.Tokens
		i := 0
		for i < len(tokens) {
			tok := tokens[i]
			if tok.CorefMentionIdx != doc.NoMention {
				i++
				continue
			}

			if tagged(tok) {
				end := i + 1
				for end < len(tokens) &&
					tokens[end].NER == tok.NER &&
					tokens[end].CorefMentionIdx == doc.NoMention {
					end++
				}
				// coreference spans keep a trailing possessive marker
				if end < len(tokens) && tokens[end].Text == "'s" &&
					tokens[end].CorefMentionIdx == doc.NoMention {
					end++
				}
				if end-i == 1 && !a.lexicon.Referential(tok.Text) {
					i = end
					continue
				}
				d.AddCorefMention(&doc.CorefMention{
					SentNum:    sentNum,
					StartIndex: i,
					EndIndex:   end,
				})
				i = end
				continue
			}

			if a.lexicon.IsPronoun(tok.Text) {
				d.AddCorefMention(&doc.CorefMention{
					SentNum:    sentNum,
					StartIndex: i,
					EndIndex:   i + 1,
				})
			}
			i++
		}
	}
	return nil
}

func tagged(tok *doc.Token) bool {
	return tok.NER != "" && tok.NER != "O"
}
