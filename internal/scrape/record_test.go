package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordStr(t *testing.T) {
	rec := Record{
		"empty":   "",
		"second":  "value",
		"wrapped": map[string]any{"linkedinText": "inner"},
		"flag":    true,
		"count":   float64(42),
		"blank":   map[string]any{"irrelevant": "x"},
	}

	assert.Equal(t, "value", rec.Str("fb", "missing", "empty", "second"))
	assert.Equal(t, "inner", rec.Str("fb", "wrapped"))
	assert.Equal(t, "true", rec.Str("fb", "flag"))
	assert.Equal(t, "42", rec.Str("fb", "count"))
	assert.Equal(t, "fb", rec.Str("fb", "blank"))
	assert.Equal(t, "fb", rec.Str("fb", "missing"))
}

func TestRecordNum(t *testing.T) {
	rec := Record{"a": float64(12), "b": "34", "c": "not a number"}

	n, ok := rec.Num("a")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	n, ok = rec.Num("b")
	assert.True(t, ok)
	assert.Equal(t, 34, n)

	_, ok = rec.Num("c")
	assert.False(t, ok)
	_, ok = rec.Num("missing")
	assert.False(t, ok)
}

func TestRecordObjAndList(t *testing.T) {
	rec := Record{
		"info":  map[string]any{"k": "v"},
		"items": []any{"a", "b"},
		"str":   "not an object",
	}

	assert.Equal(t, "v", rec.Obj("str", "info").Str("", "k"))
	assert.Nil(t, rec.Obj("missing", "str"))
	assert.Len(t, rec.List("items"), 2)
	assert.Nil(t, rec.List("str"))
}

func TestCoerceStringFallback(t *testing.T) {
	assert.Equal(t, "x", CoerceString("x", "fb"))
	assert.Equal(t, "fb", CoerceString(nil, "fb"))
	assert.Equal(t, "fb", CoerceString([]any{"list"}, "fb"))
	assert.Equal(t, "wrapped", CoerceString(map[string]any{"name": "wrapped"}, "fb"))
}
