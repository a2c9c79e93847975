package accounts

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/ids"
	"golang.org/x/crypto/bcrypt"
)

// Directory is the in-memory account registry.
type Directory struct {
	mu      sync.RWMutex
	byEmail map[string]Account
	ids     *ids.Allocator
	cost    int

	// compared against when the email is unknown, so both paths pay for bcrypt
	dummyHash []byte
}

// NewDirectory returns an empty directory hashing passwords with the given
// bcrypt cost. A cost of 0 means bcrypt.DefaultCost.
func NewDirectory(alloc *ids.Allocator, cost int) *Directory {
	if alloc == nil {
		alloc = ids.NewAllocator()
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("todokeeper"), cost)
	return &Directory{
		byEmail:   make(map[string]Account),
		ids:       alloc,
		cost:      cost,
		dummyHash: dummy,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Empty fields fail with common.ErrorValidation,
// a taken email with common.ErrorAlreadyExists.
func (d *Directory) Register(ctx context.Context, email, displayName string, password []byte) (Account, error) {
	email = normalizeEmail(email)
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" || len(password) == 0 {
		return Account{}, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword(password, d.cost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byEmail[email]; ok {
		return Account{}, fmt.Errorf("email %q: %w", email, common.ErrorAlreadyExists)
	}

	acc := Account{
		ID:           d.ids.Next(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
	}
	d.byEmail[email] = acc

	return acc, nil
}

// Authenticate returns the account for email if password matches.
// Unknown emails and wrong passwords both yield common.ErrorUnauthorized.
func (d *Directory) Authenticate(ctx context.Context, email string, password []byte) (Account, error) {
	d.mu.RLock()
	acc, ok := d.byEmail[normalizeEmail(email)]
	d.mu.RUnlock()

	if !ok {
		_ = bcrypt.CompareHashAndPassword(d.dummyHash, password)
		return Account{}, common.ErrorUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, password); err != nil {
		return Account{}, common.ErrorUnauthorized
	}

	return acc, nil
}

// GetByEmail looks an account up without checking credentials.
func (d *Directory) GetByEmail(ctx context.Context, email string) (Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	acc, ok := d.byEmail[normalizeEmail(email)]
	if !ok {
		return Account{}, common.ErrorNotFound
	}
	return acc, nil
}
