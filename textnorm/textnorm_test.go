package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"overall-merit", "overall merit"},
		{"overall_merit", "overall merit"},
		{"overall.merit", "overall merit"},
		{"overall – merit", "overall merit"},
		{"overall—merit", "overall merit"},
		{"a-_.b", "a b"},
		{"plain words", "plain words"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dedash(tt.in), "Dedash(%q)", tt.in)
	}
}

func TestDeaccent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"café", "cafe"},
		{"Élodie", "Elodie"},
		{"résumé", "resume"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Deaccent(tt.in), "Deaccent(%q)", tt.in)
	}
}

func TestSimplifyWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", SimplifyWhitespace("  a\t b\n c  "))
	assert.Equal(t, "", SimplifyWhitespace("   "))
}

func TestIsCamelWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"FooBar", true},
		{"OveMer", true},
		{"R1", true},
		{"r1", true},
		{"R10*", true},
		{"overall", false},
		{"OVERALL", false},
		{"Ove*", false},
		{"foo bar", false},
		{"foo-bar", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCamelWord(tt.in), "IsCamelWord(%q)", tt.in)
	}
}

func TestIsStrictCamelWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"FooBar", true},
		{"HTTPServer", true},
		{"R1", false},
		{"Foo", false},
		{"FOO", false},
		{"foo-Bar", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStrictCamelWord(tt.in), "IsStrictCamelWord(%q)", tt.in)
	}
}

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FooBar", "Foo Bar"},
		{"HTTPServer", "HTTP Server"},
		{"Foo2Bar", "Foo 2 Bar"},
		{"Foo", "Foo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCamel(tt.in), "SplitCamel(%q)", tt.in)
	}
}
