package poll

import "errors"

var (
	ErrDuplicatePollID = errors.New("poll ID already in use")
	ErrEmptyAnswerList = errors.New("poll needs at least one answer")
	ErrPollNotFound    = errors.New("poll not found")

	ErrUnknownAnswer = errors.New("no such answer option")
	ErrAlreadyVoted  = errors.New("identity has already voted in this poll")
)
