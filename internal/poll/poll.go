package poll

import "sync"

type State int

const (
	StateOpen State = iota
	// StateClosed is reserved; nothing transitions a poll into it yet.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type AnswerOption struct {
	Index     int
	Text      string
	VoteCount int
}

// Poll holds the tally for one question. Mutation only happens through the
// Registry that owns it.
type Poll struct {
	id       string
	question string
	creator  string
	state    State

	answers []AnswerOption
	voted   map[string]struct{}

	mu sync.Mutex
}

// Snapshot is a point-in-time copy of a poll that is safe to read without locks.
type Snapshot struct {
	ID       string
	Question string
	Creator  string
	State    State
	Answers  []AnswerOption
	Voters   int
}

func newPoll(id, question, creator string, answers []string) *Poll {
	p := &Poll{
		id:       id,
		question: question,
		creator:  creator,
		state:    StateOpen,
		answers:  make([]AnswerOption, 0, len(answers)),
		voted:    make(map[string]struct{}),
	}

	for i, text := range answers {
		p.answers = append(p.answers, AnswerOption{Index: i + 1, Text: text})
	}

	return p
}

// voteForAnswer records a vote by voter. A repeat voter is refused before the
// index is looked at so the answer set is not probed by people who already voted.
func (p *Poll) voteForAnswer(index int, voter string) (AnswerOption, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.voted[voter]; ok {
		return AnswerOption{}, ErrAlreadyVoted
	}

	if index < 1 || index > len(p.answers) {
		return AnswerOption{}, ErrUnknownAnswer
	}

	answer := &p.answers[index-1]
	answer.VoteCount++
	p.voted[voter] = struct{}{}

	return *answer, nil
}

func (p *Poll) snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	answers := make([]AnswerOption, len(p.answers))
	copy(answers, p.answers)

	return Snapshot{
		ID:       p.id,
		Question: p.question,
		Creator:  p.creator,
		State:    p.state,
		Answers:  answers,
		Voters:   len(p.voted),
	}
}

func (p *Poll) isOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateOpen
}
