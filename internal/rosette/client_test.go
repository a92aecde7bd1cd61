package rosette

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosette-api-community/document-summarization/internal/config"
	"github.com/rosette-api-community/document-summarization/internal/utils"
)

const entitiesADM = `{
  "data": "George Washington",
  "attributes": {
    "sentence": {"type": "list", "items": [{"startOffset": 0, "endOffset": 17}]},
    "token": {"type": "list", "items": [
      {"startOffset": 0, "endOffset": 6, "text": "George"}
    ]},
    "entities": {"itemType": "entities", "items": [
      {"entityId": "Q23", "type": "PERSON",
       "mentions": [{"startOffset": 0, "endOffset": 17}]}
    ]}
  }
}`

const morphologyADM = `{
  "data": "George Washington",
  "attributes": {
    "token": {"type": "list", "items": [
      {"startOffset": 0, "endOffset": 6, "text": "George",
       "analyses": [{"partOfSpeech": "PROPN", "lemma": "George", "raw": "George[+Prop]"}]},
      {"startOffset": 7, "endOffset": 17, "text": "Washington",
       "analyses": [{"partOfSpeech": "PROPN", "lemma": "Washington", "raw": "Washington[+Prop]"}]}
    ]}
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		App:     config.AppConfig{HttpTimeoutSeconds: 5},
		Rosette: config.RosetteConfig{URL: server.URL, Key: "test-key"},
	}

	client, err := NewClient(cfg, utils.NewDiscardLogger())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	cfg := &config.Config{Rosette: config.RosetteConfig{URL: "https://api.example.com"}}

	_, err := NewClient(cfg, utils.NewDiscardLogger())
	assert.Error(t, err)
}

func TestGetADMCombinesEndpoints(t *testing.T) {
	var requests []string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path)

		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-RosetteAPI-Key"))
		assert.Equal(t, "rosette", r.URL.Query().Get("output"))

		var params DocumentParameters
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "George Washington", params.Content)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/entities":
			w.Write([]byte(entitiesADM))
		case "/morphology/lemmas":
			w.Write([]byte(morphologyADM))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	document, err := client.GetADM("George Washington", "", false, "req-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"/entities", "/morphology/lemmas"}, requests)

	// the morphology token attribute replaces the entities result's
	require.Len(t, document.Tokens(), 2)
	assert.Equal(t, "PROPN", document.Tokens()[0].Primary().PartOfSpeech)

	// entity and sentence annotations come from the entities result
	require.Len(t, document.Entities(), 1)
	assert.Equal(t, "Q23", document.Entities()[0].EntityID)
	require.Len(t, document.Sentences(), 1)
}

func TestGetADMEscapesURI(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var params DocumentParameters
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "https://example.com/caf%C3%A9", params.ContentURI)
		assert.Empty(t, params.Content)

		w.Write([]byte(entitiesADM))
	})

	_, err := client.GetADM("https://example.com/café", "", true, "")
	require.NoError(t, err)
}

func TestGetADMPassesLanguage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var params DocumentParameters
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "eng", params.Language)

		w.Write([]byte(entitiesADM))
	})

	_, err := client.GetADM("some text", "eng", false, "")
	require.NoError(t, err)
}

func TestAnnotateAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid API key"}`, http.StatusForbidden)
	})

	_, err := client.Entities(DocumentParameters{Content: "text"}, "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid API key")
}
