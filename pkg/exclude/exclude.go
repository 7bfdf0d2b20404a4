// Package exclude implements gitignore-style path exclusion for the
// serialization pipeline. Pattern lines are compiled to regular expressions
// and matched against slash-separated paths relative to the working copy
// root. Directory paths must carry a trailing slash so that directory
// patterns ("build/") match them.
package exclude

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern encapsulates a compiled exclusion pattern, a negation flag, and
// the original line it was parsed from.
type Pattern struct {
	Regex  *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Indicates if the pattern is a negation (starts with '!').
	Line   string         // Original pattern line.
	LineNo int            // Position of the pattern in the rule set (1-based).
}

// RuleSet represents an ordered collection of exclusion patterns. Later
// patterns win, so a negation can re-include a path excluded earlier.
type RuleSet struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewRuleSet initializes an empty RuleSet with an optional logger.
func NewRuleSet(logger *zap.Logger) *RuleSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleSet{logger: logger}
}

// CompileLines parses and compiles pattern lines into the rule set.
// Blank lines, comments, and invalid patterns are skipped.
func (rs *RuleSet) CompileLines(lines ...string) {
	for _, line := range lines {
		regex, negate, ok := parsePatternLine(line)
		if !ok {
			continue
		}
		p := &Pattern{
			Regex:  regex,
			Negate: negate,
			Line:   strings.TrimSpace(line),
			LineNo: len(rs.patterns) + 1,
		}
		rs.patterns = append(rs.patterns, p)
		rs.logger.Debug("Compiled exclusion pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// Len returns the number of compiled patterns.
func (rs *RuleSet) Len() int {
	return len(rs.patterns)
}

// MatchesPath reports whether the given relative path is excluded.
func (rs *RuleSet) MatchesPath(path string) bool {
	matched, _ := rs.MatchesPathWithPattern(path)
	return matched
}

// MatchesPathWithPattern reports whether the path is excluded and returns
// the last pattern that decided the outcome.
func (rs *RuleSet) MatchesPathWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var matchedPattern *Pattern

	for _, p := range rs.patterns {
		if p.Regex.MatchString(normalized) {
			matched = !p.Negate
			matchedPattern = p
		}
	}

	return matched, matchedPattern
}

// parsePatternLine converts one pattern line into a compiled regular
// expression and a negation flag. The third return value is false for
// blank lines, comments, and patterns that do not compile.
func parsePatternLine(line string) (*regexp.Regexp, bool, bool) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Escaped '#' and '!' lose their special meaning.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	expr := escapeSpecialChars(trimmed)
	expr = expandDoubleStars(expr)
	expr = wildcardToRegex(expr)
	expr = anchorPattern(expr, trimmed)

	regex, err := regexp.Compile(expr)
	if err != nil {
		return nil, false, false
	}
	return regex, negate, true
}

// escapeSpecialChars escapes regex special characters except '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	const specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

var (
	doubleStarMiddle   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailing = regexp.MustCompile(`/\*\*$`)
	doubleStarLeading  = regexp.MustCompile(`^\*\*/`)
	singleStar         = regexp.MustCompile(`\*`)
)

// expandDoubleStars replaces '**' segments with regex that may span
// directory boundaries.
func expandDoubleStars(pattern string) string {
	pattern = doubleStarMiddle.ReplaceAllString(pattern, `(/|/.+/)`)
	pattern = doubleStarTrailing.ReplaceAllString(pattern, `(/.*)?`)
	pattern = doubleStarLeading.ReplaceAllString(pattern, `(.*/)?`)
	return pattern
}

// wildcardToRegex converts '*' and '?' wildcards to regex equivalents.
// '*' never crosses a directory boundary.
func wildcardToRegex(pattern string) string {
	pattern = singleStar.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// anchorPattern anchors the expression to the whole path. Patterns that
// start with '/' only match at the root; directory patterns (trailing '/')
// also match everything beneath them.
func anchorPattern(pattern, originalPattern string) string {
	if strings.HasSuffix(originalPattern, "/") {
		pattern += "(.*)?$"
	} else {
		pattern += "(/.*)?$"
	}

	if strings.HasPrefix(originalPattern, "/") {
		return "^" + strings.TrimPrefix(pattern, "/")
	}
	return "^(|.*/)" + pattern
}
