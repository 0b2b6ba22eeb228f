package model

// GenerateRequest represents a password generation request.
// Each Exclude flag removes one character class; Diceware asks for a
// passphrase instead of a character password.
type GenerateRequest struct {
	ExcludeNumeric bool
	ExcludeLower   bool
	ExcludeUpper   bool
	ExcludeSymbol  bool
	Diceware       bool
	Length         int
}

// HasExclusions reports whether any character class was excluded.
func (r GenerateRequest) HasExclusions() bool {
	return r.ExcludeNumeric || r.ExcludeLower || r.ExcludeUpper || r.ExcludeSymbol
}

// GenerateResponse represents a generated password.
type GenerateResponse struct {
	Password    string
	Length      int
	CharsetSize int
}
