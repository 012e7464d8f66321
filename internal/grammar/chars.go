package grammar

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsAlphanumChar checks the ALPHA / DIGIT alternative.
func IsAlphanumChar(c byte) bool {
	return IsAlphaChar(c) || IsDigitChar(c)
}

// IsHexChar checks the HEXDIG rule.
func IsHexChar(c byte) bool { return ishex(c) }

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsUnreservedChar checks the unreserved rule.
func IsUnreservedChar(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}

var subDelimChars = map[byte]bool{
	'!':  true,
	'$':  true,
	'&':  true,
	'\'': true,
	'(':  true,
	')':  true,
	'*':  true,
	'+':  true,
	',':  true,
	';':  true,
	'=':  true,
}

// IsSubDelimChar checks the sub-delims rule.
func IsSubDelimChar(c byte) bool {
	return subDelimChars[c]
}

var schemeChars = map[byte]bool{
	'+': true,
	'-': true,
	'.': true,
}

// IsSchemeChar checks a non-leading scheme character.
func IsSchemeChar(c byte) bool {
	return schemeChars[c] || IsAlphanumChar(c)
}

// IsUserinfoChar checks the userinfo rule: unreserved / sub-delims / ":".
func IsUserinfoChar(c byte) bool {
	return c == ':' || IsUnreservedChar(c) || IsSubDelimChar(c)
}

// IsRegNameChar checks the reg-name rule: unreserved / sub-delims.
func IsRegNameChar(c byte) bool {
	return IsUnreservedChar(c) || IsSubDelimChar(c)
}

// IsPcharChar checks the pchar rule: unreserved / sub-delims / ":" / "@".
func IsPcharChar(c byte) bool {
	return c == ':' || c == '@' || IsUnreservedChar(c) || IsSubDelimChar(c)
}

// IsQueryChar checks the query rule: pchar / "/" / "?".
func IsQueryChar(c byte) bool {
	return c == '/' || c == '?' || IsPcharChar(c)
}

// IsFragmentChar checks the fragment rule, which shares the query alphabet.
func IsFragmentChar(c byte) bool {
	return IsQueryChar(c)
}

// IsZoneChar checks a zone identifier character: unreserved per RFC 6874.
func IsZoneChar(c byte) bool {
	return IsUnreservedChar(c)
}

// IsIPvFutureChar checks an IPvFuture payload character:
// unreserved / sub-delims / ":".
func IsIPvFutureChar(c byte) bool {
	return c == ':' || IsUnreservedChar(c) || IsSubDelimChar(c)
}
