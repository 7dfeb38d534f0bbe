package models

// SignupForm carries the fields typed on the signup screen. The validate tags
// declare the presence and confirmation rules; uniqueness is checked against
// the store separately.
type SignupForm struct {
	Username        string `validate:"required"`
	Password        string `validate:"required"`
	PasswordConfirm string `validate:"eqfield=Password"`
}
