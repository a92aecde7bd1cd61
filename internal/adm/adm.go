// Package adm models the Annotated Data Model: document text plus sentence,
// token, and entity annotations at character-offset granularity, as produced
// by the Rosette API with output=rosette.
package adm

import "encoding/json"

// Analysis is one morphological reading of a token.
type Analysis struct {
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Lemma        string `json:"lemma,omitempty"`
	Raw          string `json:"raw,omitempty"`
}

type Token struct {
	Span
	Text     string     `json:"text,omitempty"`
	Analyses []Analysis `json:"analyses,omitempty"`
}

// Primary returns the token's first analysis, or a zero Analysis when the
// token carries none. Tokens without analyses never pass the contentful-POS
// filter downstream.
func (t Token) Primary() Analysis {
	if len(t.Analyses) == 0 {
		return Analysis{}
	}
	return t.Analyses[0]
}

type Mention struct {
	Span
	Normalized string `json:"normalized,omitempty"`
	Source     string `json:"source,omitempty"`
	Subsource  string `json:"subsource,omitempty"`
}

type Entity struct {
	EntityID         string    `json:"entityId,omitempty"`
	Type             string    `json:"type,omitempty"`
	Mentions         []Mention `json:"mentions,omitempty"`
	HeadMentionIndex int       `json:"headMentionIndex"`
	Confidence       float64   `json:"confidence,omitempty"`
}

// EntityMention is a mention flattened out of its owning entity. EntityID and
// Type are copied at construction, not referenced back.
type EntityMention struct {
	Span
	EntityID string
	Type     string
}

type Sentence struct {
	Span
}

// ListAttribute is the ADM list container: {"type": ..., "itemType": ...,
// "items": [...]}.
type ListAttribute[T any] struct {
	Type     string `json:"type,omitempty"`
	ItemType string `json:"itemType,omitempty"`
	Items    []T    `json:"items"`
}

// ScoredSentence is a sentence augmented with its relevance score, token
// count, and resolved text.
type ScoredSentence struct {
	Span
	Score       float64 `json:"score"`
	TokenLength int     `json:"tokenLength"`
	Text        string  `json:"text"`
}

// Summary is the attribute added to an ADM by summarization: every sentence
// ranked by score plus the joined top-n text in reading order.
type Summary struct {
	Info    string           `json:"info"`
	Ranked  []ScoredSentence `json:"ranked"`
	Summary string           `json:"summary"`
}

type Attributes struct {
	Sentences         *ListAttribute[Sentence] `json:"sentence,omitempty"`
	Tokens            *ListAttribute[Token]    `json:"token,omitempty"`
	Entities          *ListAttribute[Entity]   `json:"entities,omitempty"`
	LanguageDetection json.RawMessage          `json:"languageDetection,omitempty"`
	ScriptRegion      json.RawMessage          `json:"scriptRegion,omitempty"`
	Summary           *Summary                 `json:"summary,omitempty"`
}

// Document is a full ADM: the original text plus its annotations.
type Document struct {
	Version    string     `json:"version,omitempty"`
	Data       string     `json:"data"`
	Attributes Attributes `json:"attributes"`
}

func (d *Document) Sentences() []Sentence {
	if d.Attributes.Sentences == nil {
		return nil
	}
	return d.Attributes.Sentences.Items
}

func (d *Document) Tokens() []Token {
	if d.Attributes.Tokens == nil {
		return nil
	}
	return d.Attributes.Tokens.Items
}

func (d *Document) Entities() []Entity {
	if d.Attributes.Entities == nil {
		return nil
	}
	return d.Attributes.Entities.Items
}

// EntityMentions flattens every entity's mentions into a single slice, each
// carrying a copy of its entity's id and type.
func (d *Document) EntityMentions() []EntityMention {
	var mentions []EntityMention
	for _, entity := range d.Entities() {
		for _, m := range entity.Mentions {
			mentions = append(mentions, EntityMention{
				Span:     m.Span,
				EntityID: entity.EntityID,
				Type:     entity.Type,
			})
		}
	}
	return mentions
}

// TextFor resolves a range to its substring of the document text. Absent or
// out-of-bounds ranges resolve to the empty string; callers are expected to
// pass well-formed extents.
func (d *Document) TextFor(r Range) string {
	if r.IsAbsent() || r.Start < 0 || r.End > len(d.Data) || r.Start > r.End {
		return ""
	}
	return d.Data[r.Start:r.End]
}
