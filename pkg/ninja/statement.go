// pkg/ninja/statement.go
package ninja

import (
	"regexp"
	"strings"
)

// ScopedDepth is the indentation of a variable that belongs to the preceding build rule
const ScopedDepth = 2

var (
	assignmentRe = regexp.MustCompile(`^( *)(\w+) = (.*)`)
	linkRuleRe   = regexp.MustCompile(`^build ([^ ]+): link (.*) \|\|`)
)

// Statement is a parsed descriptor line: Assignment or LinkRule
type Statement interface {
	statement()
}

// Assignment is a "key = value" line
type Assignment struct {
	Key   string
	Value string
	Depth int // leading spaces
}

// LinkRule is a "build <target>: link <inputs> || <order-only deps>" line
type LinkRule struct {
	Target string
	Inputs []string
}

func (Assignment) statement() {}
func (LinkRule) statement()   {}

// ParseLine parses one descriptor line. Lines that are neither an assignment
// nor a link rule return nil.
func ParseLine(line string) Statement {
	if m := assignmentRe.FindStringSubmatch(line); m != nil {
		return Assignment{
			Key:   m[2],
			Value: m[3],
			Depth: len(m[1]),
		}
	}

	if m := linkRuleRe.FindStringSubmatch(line); m != nil {
		return LinkRule{
			Target: m[1],
			Inputs: strings.Fields(m[2]),
		}
	}

	return nil
}
