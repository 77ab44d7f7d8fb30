package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitQuoted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only spaces", "   \t ", []string{}},
		{"plain words", "pets dogs cats", []string{"pets", "dogs", "cats"}},
		{
			"mixed quoting",
			`pets "who's better?" dogs cats "cat dogs"`,
			[]string{"pets", "who's better?", "dogs", "cats", "cat dogs"},
		},
		{"single quotes", `bore 'who is?' ann? 'could it be me?'`, []string{"bore", "who is?", "ann?", "could it be me?"}},
		{"adjacent quote joins token", `a"b c"d`, []string{"ab cd"}},
		{"empty quoted token", `x "" y`, []string{"x", "", "y"}},
		{"escaped quote in double quotes", `"say \"hi\""`, []string{`say "hi"`}},
		{"backslash kept in double quotes", `"a\b"`, []string{`a\b`}},
		{"backslash literal in single quotes", `'a\'`, []string{`a\`}},
		{"escaped space outside quotes", `cat\ dogs x`, []string{"cat dogs", "x"}},
		{"trailing backslash", `x\`, []string{`x\`}},
		{"extra whitespace", "  a   b  ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitQuoted(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitQuotedUnterminated(t *testing.T) {
	for _, input := range []string{`pets "who's better`, `pets 'open`, `"a\"`, `x "`} {
		_, err := SplitQuoted(input)
		assert.ErrorIs(t, err, ErrUnterminatedQuote, input)
	}
}

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"pets", "1"}, SplitFields("  pets   1 "))
	assert.Empty(t, SplitFields(""))
	// Quotes carry no meaning here.
	assert.Equal(t, []string{`"a`, `b"`}, SplitFields(`"a b"`))
}

func TestSplitQuotedHashIsOrdinary(t *testing.T) {
	got, err := SplitQuoted(`tags q #1 #2 "#three"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"tags", "q", "#1", "#2", "#three"}, got)
}
