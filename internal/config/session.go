package config

import (
	"fmt"
	"sort"
)

// DefaultProfile is applied automatically when a session is created.
const DefaultProfile = "default"

// Session accumulates options from one or more applied profiles. It is meant
// for a single launch and is not safe for concurrent use.
type Session struct {
	doc     Document
	Options Options
	applied []string
}

// NewSession creates a session over doc and applies the "default" profile
// if the document has one.
func NewSession(doc Document) (*Session, error) {
	if doc == nil {
		doc = Document{}
	}
	s := &Session{doc: doc}
	if _, ok := doc[DefaultProfile]; ok {
		if err := s.Apply(DefaultProfile); err != nil {
			return nil, fmt.Errorf("failed to apply default profile: %w", err)
		}
	}
	return s, nil
}

// Apply resolves the named profile and overlays it onto the session options.
// On error the session options are left untouched.
func (s *Session) Apply(name string) error {
	resolved, err := Resolve(s.doc, name)
	if err != nil {
		return err
	}

	next := s.Options
	if err := next.Apply(resolved); err != nil {
		return fmt.Errorf("profile %s: %w", name, err)
	}
	s.Options = next
	s.applied = append(s.applied, name)
	return nil
}

// Applied returns the profiles applied so far, in order.
func (s *Session) Applied() []string {
	return append([]string(nil), s.applied...)
}

// Profiles returns the sorted profile names of the session's document.
func (s *Session) Profiles() []string {
	names := make([]string, 0, len(s.doc))
	for name := range s.doc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
