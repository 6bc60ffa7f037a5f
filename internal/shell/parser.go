package shell

import (
	"strings"

	"smash/pkg/cerr"
)

// SimpleCommand is argv[0..] for one command in a && chain. Background
// is only ever set on the last command of a CommandList.
type SimpleCommand struct {
	Args       []string
	Background bool
}

// CommandList is a non-empty chain of SimpleCommands joined by &&.
type CommandList struct {
	Commands []SimpleCommand
}

// Parse turns tokens (as produced by Tokenize) into a CommandList. A
// nil, nil result means the line carried no command (empty/whitespace
// input); the caller re-prompts without error.
func Parse(tokens []string) (*CommandList, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	background := false
	if tokens[len(tokens)-1] == "&" {
		background = true
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil, cerr.New(cerr.Parse, "", "invalid arguments", nil)
	}

	for _, t := range tokens {
		if t == "&" {
			return nil, cerr.New(cerr.Parse, "", "invalid arguments", nil)
		}
	}

	var segments [][]string
	var cur []string
	for i, t := range tokens {
		if t == "&&" {
			if i == 0 || i == len(tokens)-1 || len(cur) == 0 {
				return nil, cerr.New(cerr.Parse, "", "invalid arguments", nil)
			}
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) == 0 {
		return nil, cerr.New(cerr.Parse, "", "invalid arguments", nil)
	}
	segments = append(segments, cur)

	cmds := make([]SimpleCommand, len(segments))
	for i, seg := range segments {
		cmds[i] = SimpleCommand{Args: seg}
	}
	cmds[len(cmds)-1].Background = background

	return &CommandList{Commands: cmds}, nil
}

// StripTrailingBackground removes a single trailing lone '&' (and the
// whitespace around it) from the raw input line, for use as a Job's
// CommandText. It mirrors Parse's notion of "lone trailing &" but
// operates on the original text so spacing and quoting survive intact.
func StripTrailingBackground(line string) string {
	trimmed := strings.TrimRight(line, " \t\r\n")
	if strings.HasSuffix(trimmed, "&&") || !strings.HasSuffix(trimmed, "&") {
		return trimmed
	}
	trimmed = strings.TrimSuffix(trimmed, "&")
	return strings.TrimRight(trimmed, " \t\r\n")
}
