package auth

// Claim names written by Issuer and recognised by Extractor.
const (
	ClaimSubject        = "sub"
	ClaimEmail          = "email"
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimEmailAddress   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
)

// Field is a canonical identity attribute read from a claim set.
type Field string

const (
	FieldSubject Field = "subject"
	FieldEmail   Field = "email"
)

// Accepted claim names per field, in lookup order.
var aliases = map[Field][]string{
	FieldSubject: {ClaimSubject, ClaimNameIdentifier},
	FieldEmail:   {ClaimEmail, ClaimEmailAddress},
}

// Claims is a verified claim set.
type Claims map[string]any

// Get returns the first non-empty string claim accepted for field.
func (c Claims) Get(field Field) (string, bool) {
	for _, name := range aliases[field] {
		if v, ok := c[name].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
