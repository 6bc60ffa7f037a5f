package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"smash/pkg/cerr"
)

func builtinDiff(_ *State, stdout io.Writer, args []string) error {
	if len(args) != 2 {
		return cerr.New(cerr.Arity, "diff", "expected 2 arguments", nil)
	}

	infos := make([]os.FileInfo, 2)
	for i, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return cerr.New(cerr.Filesystem, "diff", "expected valid paths for files", err)
		}
		infos[i] = info
	}
	for _, info := range infos {
		if info.IsDir() {
			return cerr.New(cerr.Filesystem, "diff", "paths are not files", nil)
		}
	}

	contents := make([][]byte, 2)
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return cerr.New(cerr.Filesystem, "diff", "failed to open file", err)
		}
		contents[i] = data
	}

	if string(contents[0]) == string(contents[1]) {
		fmt.Fprintln(stdout, "0")
		return nil
	}

	fmt.Fprintln(stdout, "1")
	diffDetail(stdout, args[0], args[1], contents[0], contents[1])
	return nil
}

// diffDetail prints a short additive summary beyond the required 0/1
// token, computed from go-difflib's opcodes rather than a hand-rolled
// byte scan.
func diffDetail(stdout io.Writer, pathA, pathB string, a, b []byte) {
	matcher := difflib.NewMatcher(splitLines(a), splitLines(b))
	changed := 0
	for _, op := range matcher.GetOpCodes() {
		if op.Tag != 'e' {
			changed++
		}
	}
	fmt.Fprintf(stdout, "differs in %d region(s) between %s and %s\n", changed, pathA, pathB)
}

func splitLines(b []byte) []string {
	return difflib.SplitLines(string(b))
}
