package account

import "errors"

var (
	ErrInvalidAccountID = errors.New("invalid account id")
)

const (
	MinIDLength = 2
	MaxIDLength = 64
)

// ID identifies an account on the host platform. The platform's
// identity system itself is external; only the naming rules are
// enforced here: lowercase alphanumerics separated by '-', '_' or '.',
// never at the edges and never doubled.
type ID string

func NewID(raw string) (ID, error) {
	if !isValid(raw) {
		return "", ErrInvalidAccountID
	}
	return ID(raw), nil
}

func (id ID) String() string {
	return string(id)
}

// Sub composes a sub-account of id, e.g. "beach-hut".Sub of "factory.app"
// is "beach-hut.factory.app".
func (id ID) Sub(name string) (ID, error) {
	return NewID(name + "." + string(id))
}

// IsValidName reports whether name can serve as the leading label of a
// sub-account id.
func IsValidName(name string) bool {
	return isValid(name)
}

func isValid(raw string) bool {
	if len(raw) < MinIDLength || len(raw) > MaxIDLength {
		return false
	}
	prevSep := true // separator may not lead
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevSep = false
		case c == '-' || c == '_' || c == '.':
			if prevSep {
				return false
			}
			prevSep = true
		default:
			return false
		}
	}
	return !prevSep // separator may not trail
}
