package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerMatch(t *testing.T) {
	trigger := NewTrigger("VoteBot")

	tests := []struct {
		text    string
		want    string
		matched bool
	}{
		{".votebot list", "list", true},
		{".VOTEBOT vote pets 1", "vote pets 1", true},
		{".VoteBot   help  ", "help", true},
		{".votebot ", "", true},
		{".votebot", "", false},
		{"votebot list", "", false},
		{".votebotx list", "", false},
		{"hey .votebot list", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := trigger.Match(tt.text)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "VoteBot", trigger.BotName())
}
