package summarizer

import (
	"cmp"
	"math"
	"slices"

	"github.com/rosette-api-community/document-summarization/internal/adm"
)

func cmpExtent(a, b adm.Range) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

// ScoreSentences assigns each sentence a contentfulness score and token count.
// Sentences are returned as augmented copies in document order (sorted once by
// extent, which also fixes the baseline for stable rank-sorting later); the
// input document is not modified.
func ScoreSentences(doc *adm.Document) []adm.ScoredSentence {
	lexFD := lexicalFrequencies(doc.Tokens())
	entFD := entityFrequencies(doc.EntityMentions())

	tokens := slices.Clone(doc.Tokens())
	slices.SortFunc(tokens, func(a, b adm.Token) int {
		return cmpExtent(a.Extent(), b.Extent())
	})
	mentions := doc.EntityMentions()
	slices.SortFunc(mentions, func(a, b adm.EntityMention) int {
		return cmpExtent(a.Extent(), b.Extent())
	})

	sentences := make([]adm.ScoredSentence, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		sentences = append(sentences, adm.ScoredSentence{Span: s.Span})
	}
	slices.SortFunc(sentences, func(a, b adm.ScoredSentence) int {
		return cmpExtent(a.Extent(), b.Extent())
	})

	sweep(sentences, tokens, mentions, lexFD, entFD)
	return sentences
}

// sweep accumulates per-sentence scores in a single coordinated pass. It
// requires sentences non-overlapping and in left-to-right order and tokens and
// mentions sorted ascending by extent; the cursors only ever advance, so
// violating either precondition misattributes units. Sorting is the caller's
// job, done once.
func sweep(
	sentences []adm.ScoredSentence,
	tokens []adm.Token,
	mentions []adm.EntityMention,
	lexFD distribution[lexicalKey],
	entFD distribution[string],
) {
	total := len(sentences)
	ti, mi := 0, 0

	for i := range sentences {
		sentence := &sentences[i]
		extent := sentence.Extent()

		// frequencies of contentful tokens increase the sentence score
		for ti < len(tokens) {
			ext := tokens[ti].Extent()
			if adm.Overlaps(ext, extent) {
				sentence.Score += float64(lexFD.score(lexicalKeyOf(tokens[ti])))
				sentence.TokenLength++
				ti++
				continue
			}
			if ext.End > extent.End {
				// ahead: belongs to a later sentence
				break
			}
			// behind, empty, or absent: cannot match this or any later
			// sentence, so it contributes nothing
			ti++
		}
		// frequencies of contentful entity mentions contribute as well
		for mi < len(mentions) {
			ext := mentions[mi].Extent()
			if adm.Overlaps(ext, extent) {
				sentence.Score += float64(entFD.score(mentions[mi].EntityID))
				mi++
				continue
			}
			if ext.End > extent.End {
				break
			}
			mi++
		}

		// normalize by sentence length in tokens; empty sentences score zero
		sentence.Score /= float64(max(sentence.TokenLength, 1))
		// penalize later sentences, with logarithmic falloff: the first
		// sentence is weighted ln(total+1), the last ln(2)
		sentence.Score *= math.Log(float64(total-i) + 1)
	}
}
