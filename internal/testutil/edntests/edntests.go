// Package edntests reads test files made of inputs and their expected decoding.
//
//	-- test: name
//	> input
//	expected canonical text
//	! malformed input
//	'error message regexp'
//
// Blank lines and lines starting with "--" are ignored.
package edntests

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Statement struct {
	Input     string
	InputLine int
	Res       string
	ResLine   int
	Fail      bool
}

type Test struct {
	Name       string
	Statements []*Statement
}

type Suite struct {
	Tests []*Test
}

func Parse(r io.Reader) (*Suite, error) {
	s := bufio.NewScanner(r)
	ts := Suite{}

	var curTest *Test
	var curStmt *Statement
	lineNum := 0
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		lineNum++
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "-- test:"):
			curTest = &Test{
				Name: strings.TrimSpace(strings.TrimPrefix(line, "-- test:")),
			}
			ts.Tests = append(ts.Tests, curTest)
		case strings.HasPrefix(line, "--"): // ignore normal comments
			continue
		case line[0] == '>' || line[0] == '!':
			if curTest == nil {
				return nil, fmt.Errorf("line %d: statement outside of a test", lineNum)
			}
			curStmt = &Statement{
				Input:     strings.TrimSpace(line[1:]),
				InputLine: lineNum,
				Fail:      line[0] == '!',
			}
			curTest.Statements = append(curTest.Statements, curStmt)
		default:
			if curStmt == nil {
				return nil, fmt.Errorf("line %d: result without a statement", lineNum)
			}
			if curStmt.Fail {
				if len(line) < 2 || line[0] != '\'' || line[len(line)-1] != '\'' {
					return nil, fmt.Errorf("line %d: error statement must be surrounded by ' in `%s`", lineNum, line)
				}

				curStmt.Res = line[1 : len(line)-1]
			} else {
				curStmt.Res = line
			}
			curStmt.ResLine = lineNum
		}
	}

	return &ts, s.Err()
}
