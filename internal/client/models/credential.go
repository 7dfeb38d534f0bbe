// Package models defines the records persisted by the credential store and
// the forms submitted to the auth service.
package models

// Credential is the stored secret for one user. PasswordHash is always the
// output of the password hasher, never the plaintext.
type Credential struct {
	PasswordHash string `toml:"password_hash"`
}

// CredentialStore maps a case-sensitive, non-empty username to its credential.
type CredentialStore map[string]Credential

// NewCredentialStore returns an empty store.
func NewCredentialStore() CredentialStore {
	return make(CredentialStore)
}

// Has reports whether username is present.
func (s CredentialStore) Has(username string) bool {
	_, ok := s[username]
	return ok
}

// Clone returns an independent copy of the store.
func (s CredentialStore) Clone() CredentialStore {
	c := make(CredentialStore, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
