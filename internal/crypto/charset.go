package crypto

const (
	numberChars    = "0123456789"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	// No I or O, they read too easily as 1 and 0.
	uppercaseChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	symbolChars    = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Charset is the ordered sequence of characters a password is drawn from.
type Charset []byte

// Exclusions selects the character classes left out of a charset.
type Exclusions struct {
	Numeric bool
	Lower   bool
	Upper   bool
	Symbol  bool
}

// BuildCharset concatenates every character class not excluded by ex.
// Classes appear as uppercase, lowercase, digits, symbols, except that a
// letters-only charset starts with lowercase. The order matters to anyone
// replaying a seeded source against the charset.
func BuildCharset(ex Exclusions) (Charset, error) {
	var parts []string

	if !ex.Lower && !ex.Upper && ex.Numeric && ex.Symbol {
		parts = []string{lowercaseChars, uppercaseChars}
	} else {
		if !ex.Upper {
			parts = append(parts, uppercaseChars)
		}
		if !ex.Lower {
			parts = append(parts, lowercaseChars)
		}
		if !ex.Numeric {
			parts = append(parts, numberChars)
		}
		if !ex.Symbol {
			parts = append(parts, symbolChars)
		}
	}

	if len(parts) == 0 {
		return nil, ErrEmptyCharset
	}

	size := 0
	for _, p := range parts {
		size += len(p)
	}
	cs := make(Charset, 0, size)
	for _, p := range parts {
		cs = append(cs, p...)
	}
	return cs, nil
}
