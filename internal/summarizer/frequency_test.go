package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosette-api-community/document-summarization/internal/adm"
)

func token(start, end int, pos, lemma, raw string) adm.Token {
	return adm.Token{
		Span:     adm.NewSpan(start, end),
		Analyses: []adm.Analysis{{PartOfSpeech: pos, Lemma: lemma, Raw: raw}},
	}
}

func TestLexicalFrequencies(t *testing.T) {
	tokens := []adm.Token{
		token(0, 3, "NOUN", "cat", "cat[+NOUN]"),
		token(4, 7, "NOUN", "cat", "cat[+NOUN]"),
		token(8, 11, "DET", "the", "the[+DET]"),
		token(12, 15, "VERB", "run", "run[+VI]"),
		token(16, 19, "PUNCT", ".", ".[+PUNCT]"),
	}

	fd := lexicalFrequencies(tokens)

	assert.Equal(t, 2, fd.score(lexicalKey{raw: "cat[+NOUN]"}))
	assert.Equal(t, 1, fd.score(lexicalKey{raw: "run[+VI]"}))
	assert.Len(t, fd, 2, "non-contentful tokens never appear as keys")
	assert.Equal(t, 0, fd.score(lexicalKey{raw: "the[+DET]"}))
}

func TestLexicalKeyFallsBackToLemmaPos(t *testing.T) {
	withRaw := token(0, 3, "NOUN", "cat", "cat[+NOUN]")
	withoutRaw := token(4, 7, "NOUN", "cat", "")

	assert.Equal(t, lexicalKey{raw: "cat[+NOUN]"}, lexicalKeyOf(withRaw))
	assert.Equal(t, lexicalKey{lemma: "cat", pos: "NOUN"}, lexicalKeyOf(withoutRaw))
	assert.NotEqual(t, lexicalKeyOf(withRaw), lexicalKeyOf(withoutRaw),
		"raw and lemma/POS variants are distinct keys")
}

func TestLexicalFrequenciesTokenWithoutAnalyses(t *testing.T) {
	tokens := []adm.Token{
		{Span: adm.NewSpan(0, 3)},
		token(4, 7, "NOUN", "cat", "cat[+NOUN]"),
	}

	fd := lexicalFrequencies(tokens)
	assert.Len(t, fd, 1, "tokens without analyses fail the contentful filter")
}

func TestEntityFrequencies(t *testing.T) {
	mentions := []adm.EntityMention{
		{Span: adm.NewSpan(0, 6), EntityID: "Q23", Type: "PERSON"},
		{Span: adm.NewSpan(10, 16), EntityID: "Q23", Type: "PERSON"},
		{Span: adm.NewSpan(20, 25), EntityID: "Q30", Type: "LOCATION"},
		{Span: adm.NewSpan(30, 35), EntityID: "E1", Type: "IDENTIFIER:URL"},
	}

	fd := entityFrequencies(mentions)

	assert.Equal(t, 2, fd.score("Q23"))
	assert.Equal(t, 1, fd.score("Q30"))
	assert.Equal(t, 0, fd.score("E1"), "non-contentful entity types are ignored")
	assert.Equal(t, 0, fd.score("missing"), "unknown keys score zero")
}
