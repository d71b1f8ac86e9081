package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), ""},
		{"zero", Value{}, ""},
		{"int", Int(-42), "-42"},
		{"float", Float(1.5), "1.5"},
		{"integral float", Float(3), "3"},
		{"string", String("Zürich"), "Zürich"},
		{"bool", Bool(true), "true"},
		{"array", Array([]Value{Int(1), String("a")}), "1,a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = Int(1).AsString()
	assert.False(t, ok)

	f, ok := Int(2).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 2.0, f)

	_, ok = String("2").AsFloat64()
	assert.False(t, ok)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	arr, ok := Strings("a", "b").AsArray()
	assert.True(t, ok)
	assert.Len(t, arr, 2)

	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull())
	assert.False(t, Int(0).IsNull())
	assert.True(t, Float(0).IsNumber())
	assert.False(t, String("1").IsNumber())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"int int", Int(1), Int(1), true},
		{"int float", Int(1), Float(1), true},
		{"int float differ", Int(1), Float(1.5), false},
		{"strings", String("a"), String("a"), true},
		{"strings case", String("a"), String("A"), false},
		{"string number", String("1"), Int(1), false},
		{"null null", Null(), Null(), true},
		{"null zero", Null(), Value{}, true},
		{"null string", Null(), String(""), false},
		{"bools", Bool(false), Bool(false), true},
		{"arrays", Strings("a", "b"), Strings("a", "b"), true},
		{"arrays order", Strings("a", "b"), Strings("b", "a"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Value
		want   int
		wantOK bool
	}{
		{"ints", Int(1), Int(2), -1, true},
		{"mixed numbers", Float(2.5), Int(2), 1, true},
		{"strings", String("b"), String("a"), 1, true},
		{"bools", Bool(false), Bool(true), -1, true},
		{"equal", String("a"), String("a"), 0, true},
		{"string int", String("1"), Int(1), 0, false},
		{"null", Null(), Int(1), 0, false},
		{"arrays", Strings("a"), Strings("a"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKey(t *testing.T) {
	assert.NotEqual(t, Int(1).Key(), String("1").Key())
	assert.NotEqual(t, Int(1).Key(), Float(1).Key())
	assert.Equal(t, Strings("a", "b").Key(), Strings("a", "b").Key())
	assert.Equal(t, "null", Null().Key())
}

func TestValueJSON(t *testing.T) {
	doc := Document{
		"n":   Int(7),
		"f":   Float(0.25),
		"s":   String("<b>x</b>"),
		"nil": Null(),
		"arr": Array([]Value{Int(1), Bool(true)}),
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var got Document
	require.NoError(t, json.Unmarshal(data, &got))
	for k, v := range doc {
		assert.True(t, Equal(v, got[k]), k)
		assert.Equal(t, v.Kind, got[k].Kind, k)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "string", KindString.String())
}
