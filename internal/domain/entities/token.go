package entities

// Token is an opaque test/dev token. Its shape depends on the token type
// (card or bank_account); it is never used for production money movement.
type Token map[string]any

// TokenDetails describes the token to issue. Exactly one of the top-level keys
// TokenTypeBankAccount or TokenTypeCard must be present.
type TokenDetails map[string]any

const (
	TokenTypeBankAccount = "bank_account"
	TokenTypeCard        = "card"
)

// ID returns the token identifier, or "" when absent.
func (t Token) ID() string {
	id, _ := t["id"].(string)
	return id
}

// Type resolves which token shape was requested. ok is false when neither or
// both of the supported keys are present.
func (d TokenDetails) Type() (tokenType string, ok bool) {
	_, bank := d[TokenTypeBankAccount]
	_, card := d[TokenTypeCard]
	switch {
	case bank && !card:
		return TokenTypeBankAccount, true
	case card && !bank:
		return TokenTypeCard, true
	default:
		return "", false
	}
}

// Section returns the nested detail mapping for a token type.
func (d TokenDetails) Section(tokenType string) map[string]any {
	m, _ := d[tokenType].(map[string]any)
	return m
}
