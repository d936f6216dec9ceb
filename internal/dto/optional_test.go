package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/pennyledger/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The note field of a patch has three states: absent (leave untouched),
// explicit null (clear), and a string value.
func TestUpdateTransactionRequest_NoteTriState(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var req dto.UpdateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(`{"amount": 100}`), &req))
		assert.False(t, req.Note.Set)
		patch := req.ToPatch()
		assert.False(t, patch.Note.IsSet())
	})

	t.Run("explicit null clears", func(t *testing.T) {
		var req dto.UpdateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(`{"note": null}`), &req))
		assert.True(t, req.Note.Set)
		assert.Nil(t, req.Note.Value)
		patch := req.ToPatch()
		note, set := patch.Note.Get()
		assert.True(t, set)
		assert.Nil(t, note)
	})

	t.Run("value", func(t *testing.T) {
		var req dto.UpdateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(`{"note": "typo fix"}`), &req))
		assert.True(t, req.Note.Set)
		require.NotNil(t, req.Note.Value)
		assert.Equal(t, "typo fix", *req.Note.Value)
	})

	t.Run("empty string is a value, not a clear", func(t *testing.T) {
		var req dto.UpdateTransactionRequest
		require.NoError(t, json.Unmarshal([]byte(`{"note": ""}`), &req))
		assert.True(t, req.Note.Set)
		require.NotNil(t, req.Note.Value)
		assert.Equal(t, "", *req.Note.Value)
	})
}
