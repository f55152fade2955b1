package contact

import "strings"

// Submission is the payload sent to the relay. It has exactly the keys
// name, email and message; the honeypot never appears here.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"

	// FieldHoneypot is the hidden input bots fill in and humans never see.
	FieldHoneypot Field = "_website"
)

// RequiredFields lists the inputs that must be non-empty before a submit.
var RequiredFields = []Field{FieldName, FieldEmail, FieldMessage}

// missing returns the first required field that is empty.
// Whitespace-only values count as present, as they do for a browser's
// required constraint.
func (s Submission) missing() (Field, bool) {
	for _, f := range RequiredFields {
		if s.get(f) == "" {
			return f, true
		}
	}
	return "", false
}

func (s Submission) get(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Input is a full set of form values as posted by a browser.
type Input struct {
	Submission
	Website string `json:"_website"`
}

// HoneypotFilled reports whether the hidden field carries anything.
func (in Input) HoneypotFilled() bool {
	return strings.TrimSpace(in.Website) != ""
}
