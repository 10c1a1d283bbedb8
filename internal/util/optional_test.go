package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		HintJa Optional[string] `json:"hintJa"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{name: "absent", body: `{}`},
		{name: "explicit null", body: `{"hintJa": null}`, wantSet: true},
		{name: "value", body: `{"hintJa": "きをつけて"}`, wantSet: true, wantValid: true, wantValue: "きをつけて"},
		{name: "empty string is a value", body: `{"hintJa": ""}`, wantSet: true, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantSet, p.HintJa.Set)
			assert.Equal(t, tt.wantValid, p.HintJa.Valid)
			assert.Equal(t, tt.wantValue, p.HintJa.Value)
		})
	}
}

func TestOptional_Ptr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NullOptional[string]().Ptr())

	p := NewOptional("x").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestOptional_UnmarshalRejectsWrongType(t *testing.T) {
	t.Parallel()

	var o Optional[string]
	assert.Error(t, json.Unmarshal([]byte(`42`), &o))
}
