package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"smash/pkg/cerr"
)

func builtinAlias(s *State, stdout io.Writer, args []string) error {
	if len(args) == 0 {
		printAliasList(stdout, s.Aliases.List())
		return nil
	}

	// An unquoted replacement ("alias ll=ls -la") tokenizes into
	// several args; rejoin them so it matches the quoted form
	// ("alias ll='ls -la'"), which collapses to one token already.
	joined := strings.Join(args, " ")
	idx := strings.IndexByte(joined, '=')
	if idx <= 0 {
		return cerr.New(cerr.BadArgs, "alias", "invalid alias format", nil)
	}
	name := joined[:idx]
	replacement := joined[idx+1:]
	if !aliasNamePattern.MatchString(name) {
		return cerr.New(cerr.BadArgs, "alias", "invalid alias format", nil)
	}

	s.Aliases.Set(name, replacement)
	return nil
}

// printAliasList column-aligns name/replacement pairs; the format
// isn't bit-exact per spec.md's built-ins table, so a readable width
// is more useful than a fixed separator.
func printAliasList(stdout io.Writer, aliases []Alias) {
	width := 0
	for _, a := range aliases {
		if w := runewidth.StringWidth(a.Name); w > width {
			width = w
		}
	}
	for _, a := range aliases {
		fmt.Fprintf(stdout, "%s  %s\n", runewidth.FillRight(a.Name, width), a.Replacement)
	}
}

func builtinUnalias(s *State, _ io.Writer, args []string) error {
	if len(args) == 0 {
		return cerr.New(cerr.Arity, "unalias", "expected at least 1 argument", nil)
	}
	for _, name := range args {
		if !s.Aliases.Remove(name) {
			return cerr.New(cerr.Lookup, "unalias", fmt.Sprintf("%s alias does not exist", name), nil)
		}
	}
	return nil
}
