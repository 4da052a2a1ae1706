package vars

// ValidName reports whether name can be used as a variable name. Valid names
// are non-empty, consist of ASCII letters, digits and underscores, and don't
// start with a digit.
func ValidName(name string) bool {
	if name == "" || isDigit(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !IsNameByte(name[i]) {
			return false
		}
	}
	return true
}

// IsNameByte reports whether b may appear in a variable name.
func IsNameByte(b byte) bool {
	return b == '_' || isDigit(b) || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
