package commands

import (
	"strings"

	"golang.org/x/text/cases"
)

// Trigger recognises messages addressed to the bot as ".<botname> <command>".
type Trigger struct {
	botName string
	folded  string
}

func NewTrigger(botName string) *Trigger {
	prefix := "." + botName
	return &Trigger{
		botName: botName,
		folded:  cases.Fold().String(prefix),
	}
}

func (t *Trigger) BotName() string {
	return t.botName
}

// Match reports whether text starts with the trigger token followed by a space
// and returns the remaining command text.
func (t *Trigger) Match(text string) (string, bool) {
	head, rest, found := strings.Cut(text, " ")
	if !found {
		return "", false
	}

	if cases.Fold().String(head) != t.folded {
		return "", false
	}

	return strings.TrimSpace(rest), true
}
