package commands

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var helpTexts = map[string]string{
	CmdHelp: "Help is a help command that helps get you help :).",
	CmdCreatePoll: "Creates a poll. Args format: <pollID> <question> <answers>(1+). " +
		"PollID is a shortkey to your poll, make it easy to type (%d chars or fewer). " +
		"Multi-word questions and answers must be quoted. " +
		"Ex: createpoll pets \"who's better?\" dogs cats \"cat dogs\"",
	CmdPollInfo: "Print the stats of an existing poll. Args format: <pollID>. Ex: pollinfo pets",
	CmdVote:     "Vote in a poll. Args format: <pollID> <answernumber>. Ex: vote pets 1",
	CmdList:     "List open polls by pollID and question. No args.",
}

func helpTopics() []string {
	topics := make([]string, 0, len(helpTexts))
	for name := range helpTexts {
		if name == CmdHelp {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}

func (r *Router) helpOverview() string {
	name := cases.Title(language.English).String(r.trigger.BotName())
	return fmt.Sprintf("%s here! Commands are %s. Do .%s help <command> for more info.",
		name, strings.Join(helpTopics(), ", "), r.trigger.BotName())
}

func (r *Router) helpFor(topic string) (string, bool) {
	text, ok := helpTexts[topic]
	if !ok {
		return "", false
	}
	if topic == CmdCreatePoll {
		text = fmt.Sprintf(text, r.parser.PollIDMaxLen())
	}
	return text, true
}
