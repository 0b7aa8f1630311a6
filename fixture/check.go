package fixture

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/teranos/fakegen/errors"
)

// MetadataPrefix starts header lines that change on every run and are
// ignored when comparing fixtures
const MetadataPrefix = "// fakegen:"

// Header is the metadata line written above a saved fixture
func Header(res *Result) string {
	return fmt.Sprintf("%s seed=%d file=%s", MetadataPrefix, res.Seed, res.File)
}

// SeedFromHeader reads the seed recorded in a fixture's metadata line
func SeedFromHeader(content []byte) (int64, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, MetadataPrefix) {
			continue
		}
		for _, field := range strings.Fields(strings.TrimPrefix(line, MetadataPrefix)) {
			v, ok := strings.CutPrefix(field, "seed=")
			if !ok {
				continue
			}
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil || seed == 0 {
				return 0, false
			}
			return seed, true
		}
	}
	return 0, false
}

// LineDiff is one line that differs between a committed fixture and a regeneration
type LineDiff struct {
	Line     int    `json:"line" yaml:"line"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
}

// CheckResult holds the result of a fixture check
type CheckResult struct {
	UpToDate    bool       `json:"up_to_date" yaml:"up_to_date"`
	Differences []LineDiff `json:"differences,omitempty" yaml:"differences,omitempty"`
}

// maxLineLen is the longest fixture line Check accepts
const maxLineLen = 1024 * 1024

// MaxReportedDiffs caps the differences collected by Check
const MaxReportedDiffs = 20

// Check compares a committed fixture with freshly generated text, ignoring
// metadata lines and trailing whitespace
func Check(expected, actual []byte) (*CheckResult, error) {
	want, err := filterMetadataLines(expected)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read committed fixture")
	}
	got, err := filterMetadataLines(actual)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read regenerated fixture")
	}

	var diffs []LineDiff
	n := len(want)
	if len(got) > n {
		n = len(got)
	}
	for i := 0; i < n && len(diffs) < MaxReportedDiffs; i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			diffs = append(diffs, LineDiff{Line: i + 1, Expected: w, Actual: g})
		}
	}
	return &CheckResult{UpToDate: len(diffs) == 0, Differences: diffs}, nil
}

// CheckFile compares the fixture at path with actual. A stale fixture returns
// the result together with an error marked errors.ErrOutOfDate.
func CheckFile(path string, actual []byte) (*CheckResult, error) {
	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("fixture %s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	res, err := Check(expected, actual)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compare %s", path)
	}
	if !res.UpToDate {
		return res, errors.WithHint(
			errors.Mark(errors.Newf("%s differs from regeneration at %d line(s)", path, len(res.Differences)), errors.ErrOutOfDate),
			"regenerate it with the same seed using fakegen generate --output",
		)
	}
	return res, nil
}

// filterMetadataLines splits content into lines without metadata lines,
// trailing whitespace or trailing blank lines
func filterMetadataLines(content []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(strings.TrimSpace(line), MetadataPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", len(lines)+1)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
