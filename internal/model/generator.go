package model

import "encoding/json"

// Pointer fields distinguish a missing value (nil -> default) from an explicit zero value.

// NumberRequest represents an integer generation request. Both bounds are required and may be
// JSON numbers or numeric strings, as typed into a form field.
type NumberRequest struct {
	Min json.RawMessage `json:"min"`
	Max json.RawMessage `json:"max"`
}

// NumberResponse carries a generated integer.
type NumberResponse struct {
	Value int64 `json:"value"`
}

// StringRequest represents a random string request.
type StringRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Special   *bool `json:"special"`
}

// PasswordRequest represents a password generation request.
type PasswordRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Special   *bool `json:"special"`
	Hash      bool  `json:"hash"`
}

// PasswordResponse represents a generated password with its strength and optional argon2id hash.
type PasswordResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
	Hash     string           `json:"hash,omitempty"`
}

// StrengthRequest asks for the strength of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse reports a password score, its grade and the grade's display text.
type StrengthResponse struct {
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Display string `json:"display"`
}

// VerifyRequest checks a password against an argon2id hash previously returned with it.
type VerifyRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// VerifyResponse reports whether the password matched the hash.
type VerifyResponse struct {
	Match bool `json:"match"`
}

// PhoneRequest selects carriers: any of all, cmcc, cucc, ctcc. Empty means all.
type PhoneRequest struct {
	Carriers []string `json:"carriers"`
}

// UsernameRequest represents a username generation request.
type UsernameRequest struct {
	Length     int   `json:"length"`
	Letters    *bool `json:"letters"`
	Numbers    *bool `json:"numbers"`
	Underscore *bool `json:"underscore"`
}

// EmailRequest represents an email generation request. Domain "random" or empty picks one.
type EmailRequest struct {
	NameLength int    `json:"name_length"`
	Domain     string `json:"domain"`
}

// IPRequest selects the address family (v4, v6) and scope (public, private).
type IPRequest struct {
	Version string `json:"version"`
	Scope   string `json:"scope"`
}

// IPResponse carries a generated address with its version and scope.
type IPResponse struct {
	Value   string `json:"value"`
	Version string `json:"version"`
	Scope   string `json:"scope"`
}

// DateRequest bounds are yyyy-MM-dd. Absent or unparseable bounds fall back to 2000-01-01 and today.
type DateRequest struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Format string `json:"format"`
}

// TimeRequest selects the clock style. Hour24 defaults to true.
type TimeRequest struct {
	Hour24  *bool `json:"hour24"`
	Seconds bool  `json:"seconds"`
}

// ValueResponse is the response of generators that produce a single string.
type ValueResponse struct {
	Value  string `json:"value"`
	Length int    `json:"length,omitempty"`
}

// EchoMessage is both the request and the response of the echo endpoint.
type EchoMessage struct {
	Text string `json:"text"`
}
