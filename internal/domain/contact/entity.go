package contact

// Message is a contact-form submission. It is created once per accepted request and never mutated.
type Message struct {
	name    Text
	email   Text
	subject Text
	body    Text
}

func NewMessage(name, email, subject, body string) (*Message, error) {
	n, err := newText(name, ErrNameRequired)
	if err != nil {
		return nil, err
	}
	e, err := newText(email, ErrEmailRequired)
	if err != nil {
		return nil, err
	}
	s, err := newText(subject, ErrSubjectRequired)
	if err != nil {
		return nil, err
	}
	b, err := newText(body, ErrMessageRequired)
	if err != nil {
		return nil, err
	}

	return &Message{
		name:    n,
		email:   e,
		subject: s,
		body:    b,
	}, nil
}

func (m *Message) Name() string    { return m.name.String() }
func (m *Message) Email() string   { return m.email.String() }
func (m *Message) Subject() string { return m.subject.String() }
func (m *Message) Body() string    { return m.body.String() }
