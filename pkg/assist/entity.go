package assist

// Report is a domain DTO with the model's answer for one form submission.
type Report struct {
	Heading string // display heading referencing the original input
	Input   string // the user input as submitted (trimmed)
	Answer  string // raw model reply
}

// ErrEmptyInput signals a blank submission; the model is never called.
type ErrEmptyInput string

func (e ErrEmptyInput) Error() string { return string(e) }
