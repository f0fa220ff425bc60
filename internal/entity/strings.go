package entity

import (
	"encoding/json"
	"fmt"
)

// Strings represents a list of labels such as tags or collection names.
type Strings []string

// Contains tests if the list contains s.
func (l Strings) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}

	return false
}

// First returns the first value or an empty string.
func (l Strings) First() string {
	if len(l) == 0 {
		return ""
	}

	return l[0]
}

// UnmarshalJSON accepts a list of strings, a single string, or null.
func (l *Strings) UnmarshalJSON(data []byte) error {
	var list []string

	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string

	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("expected list of strings, got %s", string(data))
	}

	if single == "" {
		*l = nil
	} else {
		*l = Strings{single}
	}

	return nil
}
