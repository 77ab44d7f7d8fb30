package poll

import "sync"

type Summary struct {
	ID       string
	Question string
}

// Registry owns every poll created during the life of the process.
type Registry struct {
	polls map[string]*Poll
	order []string
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		polls: make(map[string]*Poll),
	}
}

// Create inserts a new open poll. The answers slice is copied so later changes
// by the caller do not reach the poll.
func (r *Registry) Create(id, question, creator string, answers []string) (Snapshot, error) {
	if len(answers) == 0 {
		return Snapshot{}, ErrEmptyAnswerList
	}

	owned := make([]string, len(answers))
	copy(owned, answers)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.polls[id]; exists {
		return Snapshot{}, ErrDuplicatePollID
	}

	p := newPoll(id, question, creator, owned)
	r.polls[id] = p
	r.order = append(r.order, id)

	return p.snapshot(), nil
}

func (r *Registry) Get(id string) (Snapshot, error) {
	p, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	return p.snapshot(), nil
}

// Vote records voter's choice of the answer at index in poll id.
func (r *Registry) Vote(id string, index int, voter string) (AnswerOption, error) {
	p, err := r.lookup(id)
	if err != nil {
		return AnswerOption{}, err
	}
	return p.voteForAnswer(index, voter)
}

// List returns the open polls in creation order.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]Summary, 0, len(r.order))
	for _, id := range r.order {
		p := r.polls[id]
		if !p.isOpen() {
			continue
		}
		summaries = append(summaries, Summary{ID: p.id, Question: p.question})
	}
	return summaries
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.polls)
}

func (r *Registry) lookup(id string) (*Poll, error) {
	r.mu.RLock()
	p, exists := r.polls[id]
	r.mu.RUnlock()

	if !exists {
		return nil, ErrPollNotFound
	}
	return p, nil
}
