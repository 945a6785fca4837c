package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadRequestPayload(t *testing.T) {
	var pr PayloadRequest
	err := json.Unmarshal([]byte(`{"data":[
		{"post_url":"b","content":"second"},
		{"post_url":"a","content":""},
		{"post_url":"b","content":"dup"}
	]}`), &pr)
	require.NoError(t, err)

	assert.Equal(t, Payload{Data: []Content{
		{PostURL: "b", Content: "second"},
		{PostURL: "a", Content: ""},
		{PostURL: "b", Content: "dup"},
	}}, pr.Payload())
}

func TestEntitiesJSON(t *testing.T) {
	b, err := json.Marshal([]Entities{
		{PostURL: "a", Entities: []SingleEntity{{Text: "Hawaii", EntityType: "GPE"}}},
		{PostURL: "b", Entities: []SingleEntity{}},
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"post_url":"a","entities":[{"text":"Hawaii","entity_type":"GPE"}]},{"post_url":"b","entities":[]}]`,
		string(b),
	)
}

func TestInferenceError(t *testing.T) {
	cause := errors.New("out of memory")
	err := NewInferenceError(1, cause)

	assert.ErrorIs(t, err, ErrInference)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "inference failed on document 1: out of memory", err.Error())
}

func TestHTTPValidationError(t *testing.T) {
	verr := &HTTPValidationError{Detail: []ValidationError{{
		Loc:  []interface{}{"body", "data", 0, "content"},
		Msg:  "field required",
		Type: "value_error.missing",
	}}}

	assert.ErrorIs(t, verr, ErrBadRequest)
	assert.Equal(t, "bad request: field required", verr.Error())
}
