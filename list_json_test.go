package slist_test

import (
	"encoding/json"
	"testing"

	"github.com/tychoish/slist"
	"github.com/tychoish/slist/assert"
)

func TestJSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		list := slist.NewList(400, 300, 42)
		out, err := json.Marshal(list)
		assert.NotError(t, err)
		assert.Equal(t, string(out), "[400,300,42]")

		nl := &slist.List[int]{}
		assert.NotError(t, json.Unmarshal(out, nl))
		assert.True(t, nl.Equal(list))
		assert.NotError(t, nl.Validate())
	})
	t.Run("Empty", func(t *testing.T) {
		out, err := json.Marshal(&slist.List[int]{})
		assert.NotError(t, err)
		assert.Equal(t, string(out), "[]")
	})
	t.Run("Strings", func(t *testing.T) {
		out, err := json.Marshal(slist.NewList("a", `"b"`))
		assert.NotError(t, err)
		assert.Equal(t, string(out), `["a","\"b\""]`)
	})
	t.Run("Embedded", func(t *testing.T) {
		doc := struct {
			Items *slist.List[int] `json:"items"`
		}{Items: &slist.List[int]{}}

		assert.NotError(t, json.Unmarshal([]byte(`{"items":[3,2,1]}`), &doc))
		assert.EqualItems(t, doc.Items.Slice(), []int{3, 2, 1})
	})
	t.Run("Appends", func(t *testing.T) {
		list := slist.NewList(1)
		assert.NotError(t, list.UnmarshalJSON([]byte("[2,3]")))
		assert.EqualItems(t, list.Slice(), []int{1, 2, 3})
	})
	t.Run("InvalidInput", func(t *testing.T) {
		list := slist.NewList(1)
		err := list.UnmarshalJSON([]byte(`[2,"three"]`))
		assert.Error(t, err)
		assert.Substring(t, err.Error(), "decode list")
		assert.Error(t, list.UnmarshalJSON([]byte(`{"a":1}`)))
		assert.EqualItems(t, list.Slice(), []int{1})
		assert.NotError(t, list.Validate())
	})
}
