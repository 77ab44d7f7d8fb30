package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"quidque.com/discord-votebot/internal/logger"
	"quidque.com/discord-votebot/internal/poll"
)

const (
	MsgNoOpenPolls  = "No open polls."
	MsgAlreadyVoted = "You have already voted in this poll."
)

// Event is one inbound chat message as seen by the router.
type Event struct {
	SenderIdentity string
	SenderName     string
	ReplyTarget    string
	Text           string
}

// Caller identifies who issued a command and where the answer goes.
type Caller struct {
	Identity string
	Name     string
	Target   string
}

type Replier interface {
	SendReply(target, line string) error
}

// Router turns parsed commands into registry operations and reply lines. It
// never talks to the chat transport itself.
type Router struct {
	registry *poll.Registry
	parser   *Parser
	trigger  *Trigger
}

func NewRouter(registry *poll.Registry, parser *Parser, trigger *Trigger) *Router {
	return &Router{
		registry: registry,
		parser:   parser,
		trigger:  trigger,
	}
}

// Dispatch handles an inbound event addressed to the bot and sends every reply
// line to the event's reply target. Events without the trigger prefix are
// ignored and report false.
func (r *Router) Dispatch(ev Event, out Replier) (bool, error) {
	text, ok := r.trigger.Match(ev.Text)
	if !ok {
		return false, nil
	}

	reqID := uuid.NewString()
	logger.Info.Printf("[%s] command %q from %s (%s) in %s", reqID, text, ev.SenderName, ev.SenderIdentity, ev.ReplyTarget)

	caller := Caller{
		Identity: ev.SenderIdentity,
		Name:     ev.SenderName,
		Target:   ev.ReplyTarget,
	}

	for _, line := range r.Handle(text, caller) {
		if err := out.SendReply(caller.Target, line); err != nil {
			logger.Error.Printf("[%s] failed to send reply to %s: %v", reqID, caller.Target, err)
			return true, fmt.Errorf("send reply: %w", err)
		}
	}

	return true, nil
}

// Handle parses command text and executes it. Parse failures come back as a
// single reply line.
func (r *Router) Handle(text string, caller Caller) []string {
	cmd, err := r.parser.Parse(text)
	if err != nil {
		logger.Debug.Printf("parse failed for %q: %v", text, err)
		return []string{r.parseErrorReply(err)}
	}
	return r.Execute(cmd, caller)
}

func (r *Router) Execute(cmd Command, caller Caller) []string {
	switch c := cmd.(type) {
	case CreatePoll:
		return r.createPoll(c, caller)
	case PollInfo:
		return r.pollInfo(c.PollID)
	case Vote:
		return r.vote(c, caller)
	case List:
		return r.list()
	case Help:
		return r.help(c)
	case Unknown:
		return []string{"Not understood: " + c.Word}
	default:
		logger.Error.Printf("unhandled command type %T", cmd)
		return []string{"Not understood: " + cmd.Name()}
	}
}

func (r *Router) createPoll(c CreatePoll, caller Caller) []string {
	creator := caller.Name
	if creator == "" {
		creator = caller.Identity
	}

	snap, err := r.registry.Create(c.PollID, c.Question, creator, c.Answers)
	switch {
	case errors.Is(err, poll.ErrDuplicatePollID):
		return []string{fmt.Sprintf("Invalid poll ID %s: already in use. Pick another pollID.", c.PollID)}
	case errors.Is(err, poll.ErrEmptyAnswerList):
		return []string{"Invalid answers: a poll needs at least one answer."}
	case err != nil:
		logger.Error.Printf("create poll %s: %v", c.PollID, err)
		return []string{"Could not create poll " + c.PollID}
	}

	logger.Info.Printf("Poll %s created by %s with %d answers", snap.ID, creator, len(snap.Answers))

	lines := []string{"I created a poll with ID " + snap.ID}
	return append(lines, renderPoll(snap)...)
}

func (r *Router) pollInfo(pollID string) []string {
	snap, err := r.registry.Get(pollID)
	if err != nil {
		return []string{r.registryErrorReply(pollID, 0, err)}
	}
	return renderPoll(snap)
}

func (r *Router) vote(c Vote, caller Caller) []string {
	answer, err := r.registry.Vote(c.PollID, c.AnswerIndex, caller.Identity)
	if err != nil {
		logger.Debug.Printf("vote by %s in %s refused: %v", caller.Identity, c.PollID, err)
		return []string{r.registryErrorReply(c.PollID, c.AnswerIndex, err)}
	}

	return []string{fmt.Sprintf("Vote recorded. Option %d: '%s' now has %d votes.",
		answer.Index, answer.Text, answer.VoteCount)}
}

func (r *Router) list() []string {
	summaries := r.registry.List()
	if len(summaries) == 0 {
		return []string{MsgNoOpenPolls}
	}

	lines := make([]string, 0, len(summaries)+1)
	lines = append(lines, "Open polls:")
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("%s: '%s'", s.ID, s.Question))
	}
	return lines
}

func (r *Router) help(c Help) []string {
	if c.Topic == "" {
		return []string{r.helpOverview()}
	}

	text, ok := r.helpFor(c.Topic)
	if !ok {
		return []string{"No such command: " + c.Topic}
	}
	return []string{text}
}

func renderPoll(snap poll.Snapshot) []string {
	lines := make([]string, 0, len(snap.Answers)+1)
	lines = append(lines, fmt.Sprintf("Poll %s: '%s'", snap.ID, snap.Question))
	// Answers are stored in index order already.
	for _, answer := range snap.Answers {
		lines = append(lines, fmt.Sprintf(" - %d: '%s', %d votes", answer.Index, answer.Text, answer.VoteCount))
	}
	return lines
}

func (r *Router) registryErrorReply(pollID string, index int, err error) string {
	switch {
	case errors.Is(err, poll.ErrPollNotFound):
		return "No such poll: " + pollID
	case errors.Is(err, poll.ErrUnknownAnswer):
		return fmt.Sprintf("No such option %d for poll %s", index, pollID)
	case errors.Is(err, poll.ErrAlreadyVoted):
		return MsgAlreadyVoted
	default:
		logger.Error.Printf("poll %s: %v", pollID, err)
		return "Something went wrong with poll " + pollID
	}
}

func (r *Router) parseErrorReply(err error) string {
	var perr *ParseError
	if !errors.As(err, &perr) {
		return "Not understood."
	}

	switch {
	case errors.Is(err, ErrUnterminatedQuote):
		return "Unterminated quote in " + perr.Command + " arguments. Close every ' or \" you open."
	case errors.Is(err, ErrInvalidPollID):
		return fmt.Sprintf("Invalid poll ID '%s': must be one word of %d chars or fewer.", perr.Value, r.parser.PollIDMaxLen())
	case errors.Is(err, ErrInvalidAnswerIndex):
		return "Vote option must be an integer."
	case errors.Is(err, ErrInsufficientArguments):
		return insufficientArgumentsReply(perr.Command, r.trigger.BotName())
	default:
		return "Not understood: " + perr.Command
	}
}

func insufficientArgumentsReply(cmd, botName string) string {
	switch cmd {
	case CmdCreatePoll:
		return "Not enough arguments supplied for createpoll cmd. Needs a pollID, a question and at least one answer. " +
			"Multi-word answers/questions must be in quotes. " +
			"Ex: ." + botName + " createpoll bore 'who is?' ann? 'could it be me?'"
	case CmdVote:
		return "Not enough arguments supplied for vote cmd. Should be <pollID> <answerNumber>"
	case CmdPollInfo:
		return "No arguments supplied for pollinfo cmd. Need a pollID"
	default:
		return "Not enough arguments supplied for " + cmd
	}
}

// Addressed reports whether text carries the bot's trigger prefix.
func (r *Router) Addressed(text string) bool {
	_, ok := r.trigger.Match(text)
	return ok
}
