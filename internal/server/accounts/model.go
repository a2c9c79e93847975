// Package accounts registers users and checks their credentials. A
// successful login or registration yields a signed access token whose
// subject id becomes the owner id of everything the user stores.
package accounts

// Account is a registered principal.
type Account struct {
	ID           uint64
	Email        string
	DisplayName  string
	PasswordHash []byte
}
