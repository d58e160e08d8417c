// Package session classifies event log messages into session lifecycle actions.
package session

import "strings"

// Kind identifies a recognized session lifecycle action.
type Kind int

const (
	KindUnknown Kind = iota
	KindLogin
	KindLock
	KindUnlock
	KindLogout
)

// Action is the classified meaning of one event log message. Unknown actions
// keep the original message so the full listing can show it verbatim.
type Action struct {
	Kind    Kind
	Message string
}

// classifyRules maps message tokens to action kinds. Order matters: the first
// rule whose token appears in the message wins. Tokens are matched as whole
// words, never as substrings — "SessionUnlock" contains "SessionLock" as a
// substring but must classify as Unlock.
var classifyRules = []struct {
	token string
	kind  Kind
}{
	{"SessionLogon", KindLogin},
	{"SessionLock", KindLock},
	{"SessionUnlock", KindUnlock},
	{"SessionLogoff", KindLogout},
}

// Classify maps a raw event log message to a session action. It is a pure
// function of the message text and never fails: unrecognized messages come
// back as an Unknown action carrying the original text.
func Classify(message string) Action {
	for _, rule := range classifyRules {
		if hasToken(message, rule.token) {
			return Action{Kind: rule.kind}
		}
	}
	return Action{Kind: KindUnknown, Message: message}
}

// hasToken reports whether token appears in message as a whole word. Words are
// runs of letters and digits, so punctuation and whitespace both delimit.
func hasToken(message, token string) bool {
	for _, word := range strings.FieldsFunc(message, func(r rune) bool {
		return !isWordRune(r)
	}) {
		if word == token {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return false
	}
}

// Recognized reports whether the action is one of the four session kinds that
// participate in day analysis. Unknown actions are listing-only.
func (a Action) Recognized() bool {
	return a.Kind != KindUnknown
}

// String returns the canonical label for recognized actions and the original
// message for unknown ones.
func (a Action) String() string {
	switch a.Kind {
	case KindLogin:
		return "Login"
	case KindLock:
		return "Lock"
	case KindUnlock:
		return "Unlock"
	case KindLogout:
		return "Logout"
	default:
		return a.Message
	}
}
