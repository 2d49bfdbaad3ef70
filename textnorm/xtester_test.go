package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeXTester(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"overall merit", " overall merit"},
		{"paper (draft)", " paper draft"},
		{"score: 10", " score 10"},
		{"\"quoted\" name", " quoted name"},
		{"r1", " r1"},
		{"_hidden flag", " _hidden flag"},
		{"so~what?!", " so~what?!"},
		{"()[]", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeXTester(tt.in), "MakeXTester(%q)", tt.in)
	}
}

func TestXTesterRemoveStops(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" a study of the systems", " study systems"},
		{" overall merit", " overall merit"},
		{" the of a", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, XTesterRemoveStops(tt.in), "XTesterRemoveStops(%q)", tt.in)
	}
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("The"))
	assert.True(t, IsStopWord("new"))
	assert.False(t, IsStopWord("merit"))
}

func TestStripParens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paper (draft)", "Paper"},
		{"Paper [v2] (draft)", "Paper"},
		{"Paper (a (nested)) tail", "Paper tail"},
		{"No parens", "No parens"},
		{"(all)", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripParens(tt.in), "StripParens(%q)", tt.in)
	}
}
