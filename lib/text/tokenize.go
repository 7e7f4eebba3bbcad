package text

import (
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/segment"
	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/doc"
)

const nonAlphaNumericChar = 0

var sentenceTerminators = map[string]struct{}{
	".": {},
	"!": {},
	"?": {},
}

// BuildDocument segments raw text into a document with sentences and
// tokens. Character offsets are rune positions in the raw text. A trailing
// possessive clitic is split into its own 's token, matching the
// tokenization the mention detectors expect.
func BuildDocument(raw string) (*doc.Document, error) {
	d := doc.New(raw)
	segmenter := segment.NewWordSegmenterDirect([]byte(raw))

	sentence := &doc.Sentence{}
	position := 0

	appendToken := func(text string, begin, end int) {
		tok := doc.NewToken(text)
		tok.CharBegin = begin
		tok.CharEnd = end
		sentence.Tokens = append(sentence.Tokens, tok)
	}

	for segmenter.Segment() {
		segmentText := string(segmenter.Bytes())
		begin := position
		position += utf8.RuneCountInString(segmentText)

		if segmenter.Type() == nonAlphaNumericChar {
			if strings.TrimSpace(segmentText) == "" {
				continue
			}
			appendToken(segmentText, begin, position)
			if _, terminal := sentenceTerminators[segmentText]; terminal && len(sentence.Tokens) > 0 {
				d.AddSentence(sentence)
				sentence = &doc.Sentence{}
			}
			continue
		}

		normalized := NormalizeToken(segmentText)
		if utf8.RuneCountInString(segmentText) > 2 &&
			strings.HasSuffix(strings.ToLower(normalized), "'s") {
			// offsets come from the raw text: the clitic is always two raw
			// runes (an apostrophe variant and the s), whatever NFKC did to
			// the rune count of the head
			headEnd := position - 2
			appendToken(normalized[:len(normalized)-2], begin, headEnd)
			appendToken("'s", headEnd, position)
			continue
		}
		appendToken(normalized, begin, position)
	}
	if err := segmenter.Err(); err != nil {
		return nil, err
	}

	if len(sentence.Tokens) > 0 {
		d.AddSentence(sentence)
	}
	return d, nil
}
