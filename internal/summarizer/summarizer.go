// Package summarizer scores and selects sentences from an annotated document
// to form an extractive summary. Scores come from frequency distributions over
// contentful lexical and entity units, normalized by sentence length and
// decayed by document position.
package summarizer

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/rosette-api-community/document-summarization/internal/adm"
)

// DefaultPercent is the fraction of sentences retained when neither a percent
// nor an explicit top-n is supplied.
const DefaultPercent = 0.15

// ErrNoSentences is returned when the document carries no sentence
// annotations.
var ErrNoSentences = errors.New("no sentences to summarize")

// Summarize scores every sentence of doc and builds a summary retaining the
// top n sentences, or the top percent of them when n <= 0. The returned
// summary holds all sentences ranked by score descending and the selected
// sentences' text joined in reading order. The document itself is left
// untouched; callers attach the result to doc.Attributes.Summary when they
// want the augmented ADM.
func Summarize(doc *adm.Document, percent float64, n int) (*adm.Summary, error) {
	sentences := ScoreSentences(doc)
	total := len(sentences)
	if total == 0 {
		return nil, ErrNoSentences
	}

	if n <= 0 {
		n = max(int(math.Floor(float64(total)*percent)), 1)
	} else {
		percent = float64(n) / float64(total)
	}

	for i := range sentences {
		sentences[i].Text = doc.TextFor(sentences[i].Extent())
	}

	// stable sort: equal scores keep their document order
	ranked := slices.Clone(sentences)
	slices.SortStableFunc(ranked, func(a, b adm.ScoredSentence) int {
		return cmp.Compare(b.Score, a.Score)
	})

	topN := slices.Clone(ranked[:min(n, total)])
	slices.SortFunc(topN, func(a, b adm.ScoredSentence) int {
		return cmpExtent(a.Extent(), b.Extent())
	})

	lines := make([]string, len(topN))
	for i, s := range topN {
		lines[i] = strings.TrimRight(s.Text, "\r\n")
	}

	return &adm.Summary{
		Info:    fmt.Sprintf("maintained %d sentences (%.0f%% of original sentences)", n, percent*100),
		Ranked:  ranked,
		Summary: strings.Join(lines, "\n"),
	}, nil
}
