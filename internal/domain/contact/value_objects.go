package contact

import "strings"

type Text struct {
	value string
}

func newText(s string, errEmpty error) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, errEmpty
	}
	return Text{value: t}, nil
}

func (t Text) String() string { return t.value }
