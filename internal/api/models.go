package api

// Common request/response structures

// VerifyRequest defines the payload for the password verification endpoint.
type VerifyRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Messages whose exact wording is part of the external contract.
const (
	// MsgPasswordCorrect is returned when verification succeeds.
	MsgPasswordCorrect = "Password is correct."

	// MsgInvalidCredentials is returned when the username/password pair does
	// not match a stored account. The same message covers unknown usernames
	// and wrong passwords so the response does not reveal which it was.
	MsgInvalidCredentials = "Invalid username or password."
)
