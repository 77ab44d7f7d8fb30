package poll

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateThenGet(t *testing.T) {
	r := NewRegistry()

	created, err := r.Create("pets", "who's better?", "alice", []string{"dogs", "cats", "cat dogs"})
	require.NoError(t, err)
	assert.Equal(t, "pets", created.ID)

	got, err := r.Get("pets")
	require.NoError(t, err)
	assert.Equal(t, "who's better?", got.Question)
	assert.Equal(t, []AnswerOption{
		{Index: 1, Text: "dogs"},
		{Index: 2, Text: "cats"},
		{Index: 3, Text: "cat dogs"},
	}, got.Answers)
}

func TestRegistryCreateCopiesAnswers(t *testing.T) {
	r := NewRegistry()
	answers := []string{"dogs", "cats"}

	_, err := r.Create("pets", "q", "alice", answers)
	require.NoError(t, err)

	answers[0] = "mutated"

	got, err := r.Get("pets")
	require.NoError(t, err)
	assert.Equal(t, "dogs", got.Answers[0].Text)
}

func TestRegistryCreateDuplicateLeavesPollUntouched(t *testing.T) {
	r := NewRegistry()

	_, err := r.Create("pets", "original", "alice", []string{"dogs"})
	require.NoError(t, err)
	_, err = r.Vote("pets", 1, "host-a")
	require.NoError(t, err)

	_, err = r.Create("pets", "replacement", "bob", []string{"x", "y"})
	assert.ErrorIs(t, err, ErrDuplicatePollID)

	got, err := r.Get("pets")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Question)
	assert.Equal(t, "alice", got.Creator)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, 1, got.Answers[0].VoteCount)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryCreateEmptyAnswers(t *testing.T) {
	r := NewRegistry()

	_, err := r.Create("pets", "q", "alice", nil)
	assert.ErrorIs(t, err, ErrEmptyAnswerList)
	assert.Zero(t, r.Len())

	_, err = r.Get("pets")
	assert.ErrorIs(t, err, ErrPollNotFound)
}

func TestRegistryGetMissing(t *testing.T) {
	_, err := NewRegistry().Get("nope")
	assert.ErrorIs(t, err, ErrPollNotFound)
}

func TestRegistryVote(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("pets", "q", "alice", []string{"dogs", "cats"})
	require.NoError(t, err)

	answer, err := r.Vote("pets", 1, "host-a")
	require.NoError(t, err)
	assert.Equal(t, 1, answer.VoteCount)

	_, err = r.Vote("pets", 2, "host-a")
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	_, err = r.Vote("pets", 3, "host-b")
	assert.ErrorIs(t, err, ErrUnknownAnswer)

	_, err = r.Vote("other", 1, "host-b")
	assert.ErrorIs(t, err, ErrPollNotFound)

	got, err := r.Get("pets")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Answers[0].VoteCount)
	assert.Equal(t, 0, got.Answers[1].VoteCount)
}

func TestRegistryListKeepsCreationOrder(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.List())

	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		_, err := r.Create(id, "question "+id, "alice", []string{"a"})
		require.NoError(t, err)
	}

	list := r.List()
	require.Len(t, list, 3)
	for i, id := range ids {
		assert.Equal(t, Summary{ID: id, Question: "question " + id}, list[i])
	}
}

func TestRegistryConcurrentCreateSameID(t *testing.T) {
	r := NewRegistry()
	const goroutines = 64

	var wg sync.WaitGroup
	var created atomic.Int32
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			_, err := r.Create("race", fmt.Sprintf("q%d", id), "alice", []string{"a"})
			if err == nil {
				created.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrDuplicatePollID)
		}(g)
	}

	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, 1, r.Len())
	assert.Len(t, r.List(), 1)
}

func TestRegistryConcurrentVotesSameIdentity(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("race", "q", "alice", []string{"a", "b"})
	require.NoError(t, err)

	const goroutines = 64
	var wg sync.WaitGroup
	var accepted atomic.Int32
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			if _, err := r.Vote("race", id%2+1, "same-host"); err == nil {
				accepted.Add(1)
			}
		}(g)
	}

	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	got, err := r.Get("race")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Answers[0].VoteCount+got.Answers[1].VoteCount)
}

func TestRegistryConcurrentVotesDistinctIdentities(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("race", "q", "alice", []string{"a", "b"})
	require.NoError(t, err)

	const goroutines = 50
	const iterations = 20

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				voter := fmt.Sprintf("host-%d-%d", id, i)
				_, err := r.Vote("race", i%2+1, voter)
				assert.NoError(t, err)
				_, _ = r.Get("race")
			}
		}(g)
	}

	wg.Wait()

	got, err := r.Get("race")
	require.NoError(t, err)
	assert.Equal(t, goroutines*iterations/2, got.Answers[0].VoteCount)
	assert.Equal(t, goroutines*iterations/2, got.Answers[1].VoteCount)
	assert.Equal(t, goroutines*iterations, got.Voters)
}
