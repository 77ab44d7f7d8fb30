package commands

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultPollIDMaxLen = 10

type Parser struct {
	pollIDMaxLen int
}

func NewParser(pollIDMaxLen int) *Parser {
	if pollIDMaxLen <= 0 {
		pollIDMaxLen = DefaultPollIDMaxLen
	}
	return &Parser{pollIDMaxLen: pollIDMaxLen}
}

func (p *Parser) PollIDMaxLen() int {
	return p.pollIDMaxLen
}

// Parse turns command text (trigger already stripped) into a Command. Blank
// input is treated as a request for help.
func (p *Parser) Parse(input string) (Command, error) {
	word, args := splitCommand(input)

	switch word {
	case "":
		return Help{}, nil
	case CmdCreatePoll:
		return p.ParseCreatePoll(args)
	case CmdPollInfo:
		return p.ParsePollInfo(args)
	case CmdVote:
		return p.ParseVote(args)
	case CmdList:
		return List{}, nil
	case CmdHelp:
		return p.ParseHelp(args)
	default:
		return Unknown{Word: word}, nil
	}
}

// ParseCreatePoll expects <pollID> <question> <answer>..., with multi-word
// values quoted.
func (p *Parser) ParseCreatePoll(args string) (CreatePoll, error) {
	tokens, err := SplitQuoted(args)
	if err != nil {
		return CreatePoll{}, &ParseError{Command: CmdCreatePoll, Err: err}
	}

	if len(tokens) < 3 {
		return CreatePoll{}, &ParseError{Command: CmdCreatePoll, Err: ErrInsufficientArguments}
	}

	pollID := tokens[0]
	if err := p.checkPollID(CmdCreatePoll, pollID); err != nil {
		return CreatePoll{}, err
	}

	answers := make([]string, len(tokens)-2)
	copy(answers, tokens[2:])

	return CreatePoll{
		PollID:   pollID,
		Question: tokens[1],
		Answers:  answers,
	}, nil
}

func (p *Parser) ParsePollInfo(args string) (PollInfo, error) {
	tokens := SplitFields(args)
	if len(tokens) < 1 {
		return PollInfo{}, &ParseError{Command: CmdPollInfo, Err: ErrInsufficientArguments}
	}
	return PollInfo{PollID: tokens[0]}, nil
}

// ParseVote expects <pollID> <answerIndex>. Anything after the index is ignored.
func (p *Parser) ParseVote(args string) (Vote, error) {
	tokens := SplitFields(args)
	if len(tokens) < 2 {
		return Vote{}, &ParseError{Command: CmdVote, Err: ErrInsufficientArguments}
	}

	index, err := strconv.Atoi(tokens[1])
	switch {
	case errors.Is(err, strconv.ErrRange):
		// Too large to be any poll's answer; the registry reports it as unknown.
		index = math.MaxInt
		if strings.HasPrefix(tokens[1], "-") {
			index = math.MinInt
		}
	case err != nil:
		return Vote{}, &ParseError{Command: CmdVote, Value: tokens[1], Err: ErrInvalidAnswerIndex}
	}

	return Vote{PollID: tokens[0], AnswerIndex: index}, nil
}

func (p *Parser) ParseHelp(args string) (Help, error) {
	tokens, err := SplitQuoted(args)
	if err != nil {
		return Help{}, &ParseError{Command: CmdHelp, Err: err}
	}
	if len(tokens) == 0 {
		return Help{}, nil
	}
	return Help{Topic: tokens[0]}, nil
}

// checkPollID requires a single non-empty word, since vote and pollinfo
// split their arguments on whitespace.
func (p *Parser) checkPollID(cmd, pollID string) error {
	if pollID == "" || strings.IndexFunc(pollID, unicode.IsSpace) >= 0 ||
		utf8.RuneCountInString(pollID) > p.pollIDMaxLen {
		return &ParseError{Command: cmd, Value: pollID, Err: ErrInvalidPollID}
	}
	return nil
}

func splitCommand(input string) (string, string) {
	input = strings.TrimSpace(input)

	idx := strings.IndexFunc(input, unicode.IsSpace)
	if idx < 0 {
		return input, ""
	}
	return input[:idx], strings.TrimSpace(input[idx:])
}
