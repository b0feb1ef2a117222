package models

// FormState is what the registration page currently renders: the four
// input values and whether the success message is showing.
//
// The form has two states. It starts empty, and the submit button moves
// it to submitted; nothing moves it back.
type FormState struct {
	LastName       string
	CellPhone      string
	UserID         string
	Password       string
	SuccessVisible bool
}

// Submitted returns true once the success message is visible
func (s FormState) Submitted() bool {
	return s.SuccessVisible
}

// Values returns the rendered input values as a RegistrationInput
func (s FormState) Values() RegistrationInput {
	return RegistrationInput{
		LastName:  s.LastName,
		CellPhone: s.CellPhone,
		UserID:    s.UserID,
		Password:  s.Password,
	}
}

// Matches returns true if every rendered input equals the given value
// exactly, without trimming.
func (s FormState) Matches(in RegistrationInput) bool {
	return s.Values() == in
}
