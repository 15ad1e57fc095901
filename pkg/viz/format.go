package viz

import (
	"regexp"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// FormatSpec is the parsed form of a compound format token.
type FormatSpec struct {
	Base      string // base format, e.g. "png"
	Engine    string // optional layout-engine override, e.g. "neato"
	Formatter string // optional sub-formatter override, e.g. "gd"
}

// String reassembles the compound token.
func (s FormatSpec) String() string {
	token := s.Base
	if s.Engine != "" {
		token += ":" + s.Engine
	}
	if s.Formatter != "" {
		token += ":" + s.Formatter
	}
	return token
}

// formatToken matches base[:engine[:subformatter]] where each segment is
// [A-Za-z0-9_-]+. Dots are deliberately excluded from the grammar even
// though some format IDs contain them (xdot1.2); those IDs are addressed
// directly rather than through compound tokens.
var formatToken = regexp.MustCompile(`^([A-Za-z0-9_-]+)(?::([A-Za-z0-9_-]+))?(?::([A-Za-z0-9_-]+))?$`)

// ParseFormat splits a compound format token into its parts. The parser is
// pure and shared by all implementation kinds; a token that does not match
// the grammar fails with MALFORMED_FORMAT.
func ParseFormat(token string) (FormatSpec, error) {
	// Revisioned format IDs like "xdot1.2" carry a dot the segment grammar
	// rejects; accept them as bare base tokens.
	if token != "" && !strings.Contains(token, ":") && isRevisionedID(token) {
		return FormatSpec{Base: token}, nil
	}

	m := formatToken.FindStringSubmatch(token)
	if m == nil {
		return FormatSpec{}, errors.New(errors.ErrCodeMalformedFormat, "invalid format token: %q", token)
	}
	return FormatSpec{Base: m[1], Engine: m[2], Formatter: m[3]}, nil
}

// revisionedID matches IDs of the form name<major>.<minor>, e.g. "xdot1.2".
var revisionedID = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*[0-9]+\.[0-9]+$`)

func isRevisionedID(token string) bool {
	return revisionedID.MatchString(token)
}
