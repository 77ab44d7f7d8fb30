package commands

const (
	CmdCreatePoll = "createpoll"
	CmdPollInfo   = "pollinfo"
	CmdVote       = "vote"
	CmdList       = "list"
	CmdHelp       = "help"
)

// Command is one of the parsed command variants below. The set is closed: only
// types in this package implement it.
type Command interface {
	Name() string
	command()
}

type CreatePoll struct {
	PollID   string
	Question string
	Answers  []string
}

type PollInfo struct {
	PollID string
}

type Vote struct {
	PollID      string
	AnswerIndex int
}

type List struct{}

type Help struct {
	Topic string
}

// Unknown carries a command word nothing recognised.
type Unknown struct {
	Word string
}

func (CreatePoll) Name() string { return CmdCreatePoll }
func (PollInfo) Name() string   { return CmdPollInfo }
func (Vote) Name() string       { return CmdVote }
func (List) Name() string       { return CmdList }
func (Help) Name() string       { return CmdHelp }
func (u Unknown) Name() string  { return u.Word }

func (CreatePoll) command() {}
func (PollInfo) command()   {}
func (Vote) command()       {}
func (List) command()       {}
func (Help) command()       {}
func (Unknown) command()    {}
