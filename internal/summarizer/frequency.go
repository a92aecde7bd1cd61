package summarizer

import (
	"github.com/rosette-api-community/document-summarization/internal/adm"
)

// Parts of speech considered meaning-bearing for scoring.
// See https://developer.rosette.com/features-and-functions#parts-of-speech
var contentfulPOS = map[string]struct{}{
	"ADJ":   {},
	"ADV":   {},
	"NOUN":  {},
	"PROPN": {},
	"VERB":  {},
}

// Entity types considered meaning-bearing for scoring.
// See https://developer.rosette.com/features-and-functions#-entity-types
var contentfulEntityTypes = map[string]struct{}{
	"IDENTIFIER:DISTANCE":           {},
	"IDENTIFIER:LATITUDE_LONGITUDE": {},
	"IDENTIFIER:MONEY":              {},
	"LOCATION":                      {},
	"NATIONALITY":                   {},
	"ORGANIZATION":                  {},
	"PERSON":                        {},
	"PRODUCT":                       {},
	"RELIGION":                      {},
	"TEMPORAL:DATE":                 {},
	"TITLE":                         {},
}

// lexicalKey identifies a token for frequency counting: the raw morphological
// analysis when present, otherwise the lemma/POS pair. Exactly one variant is
// populated, so distinct variants never collide as map keys.
type lexicalKey struct {
	raw   string
	lemma string
	pos   string
}

func lexicalKeyOf(t adm.Token) lexicalKey {
	a := t.Primary()
	if a.Raw != "" {
		return lexicalKey{raw: a.Raw}
	}
	return lexicalKey{lemma: a.Lemma, pos: a.PartOfSpeech}
}

// distribution counts occurrences of unit keys. Lookups of unseen keys score
// zero.
type distribution[K comparable] map[K]int

func (d distribution[K]) score(key K) int {
	return d[key]
}

// lexicalFrequencies counts contentful tokens by lexical key. Tokens whose
// primary analysis is not a contentful part of speech contribute nothing and
// never appear as keys.
func lexicalFrequencies(tokens []adm.Token) distribution[lexicalKey] {
	fd := make(distribution[lexicalKey])
	for _, t := range tokens {
		if _, ok := contentfulPOS[t.Primary().PartOfSpeech]; !ok {
			continue
		}
		fd[lexicalKeyOf(t)]++
	}
	return fd
}

// entityFrequencies counts contentful entity mentions by entity id.
func entityFrequencies(mentions []adm.EntityMention) distribution[string] {
	fd := make(distribution[string])
	for _, m := range mentions {
		if _, ok := contentfulEntityTypes[m.Type]; !ok {
			continue
		}
		fd[m.EntityID]++
	}
	return fd
}
