package compose

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/meshsel/selplot/pkg/selplot/models"
)

// TitlePolicy decides what happens when a file name has no title segment.
type TitlePolicy string

const (
	// TitlePlaceholder silently uses UnknownTitle.
	TitlePlaceholder TitlePolicy = "placeholder"
	// TitleWarn uses UnknownTitle and logs a warning.
	TitleWarn TitlePolicy = "warn"
	// TitleFail returns a *models.TitleMismatchError.
	TitleFail TitlePolicy = "fail"
)

// UnknownTitle is the placeholder for file names without a title segment.
const UnknownTitle = "Unknown"

// DefaultTitlePattern matches the mesh code in names like
// c_share_krill_MB14_22.xlsx.
const DefaultTitlePattern = `_(MB\d+)_`

// Valid reports whether p is a known policy.
func (p TitlePolicy) Valid() bool {
	switch p {
	case TitlePlaceholder, TitleWarn, TitleFail:
		return true
	}
	return false
}

// TitleMatcher derives chart titles from input file names.
type TitleMatcher struct {
	re     *regexp.Regexp
	policy TitlePolicy
	logger *slog.Logger
}

// NewTitleMatcher compiles pattern. The first capture group is the title;
// a pattern without groups uses the whole match. An empty pattern selects
// DefaultTitlePattern and an empty policy selects TitleWarn.
func NewTitleMatcher(pattern string, policy TitlePolicy, logger *slog.Logger) (*TitleMatcher, error) {
	if pattern == "" {
		pattern = DefaultTitlePattern
	}
	if policy == "" {
		policy = TitleWarn
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("invalid title policy: %s (must be placeholder, warn, or fail)", policy)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid title pattern: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TitleMatcher{re: re, policy: policy, logger: logger}, nil
}

// Title extracts the title from the base name of path.
func (m *TitleMatcher) Title(path string) (string, error) {
	match := m.re.FindStringSubmatch(baseName(path))
	if match != nil {
		if len(match) > 1 {
			return match[1], nil
		}
		return match[0], nil
	}

	switch m.policy {
	case TitleFail:
		return "", &models.TitleMismatchError{Path: path, Pattern: m.re.String()}
	case TitleWarn:
		m.logger.Warn("file name does not match title pattern, using placeholder",
			"path", path,
			"pattern", m.re.String(),
			"title", UnknownTitle)
	}
	return UnknownTitle, nil
}

// ExtractTitle returns the mesh code in path using DefaultTitlePattern, or
// UnknownTitle when there is none.
func ExtractTitle(path string) string {
	m := defaultMatcher.re.FindStringSubmatch(baseName(path))
	if m == nil {
		return UnknownTitle
	}
	return m[1]
}

var defaultMatcher = &TitleMatcher{
	re:     regexp.MustCompile(DefaultTitlePattern),
	policy: TitlePlaceholder,
}

// baseName strips directories for both / and \ separators.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
