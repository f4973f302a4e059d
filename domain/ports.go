package domain

import "context"

// Storage is the synchronous key-value persistence port. Values are JSON
// snapshots of the entities above; a value set under a key must read back
// byte-for-byte equal.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Storage keys owned by the storefront core.
const (
	KeyCart           = "cart"
	KeyRecentSearches = "recentSearches"
	KeyPendingItem    = "pendingCartItem"
	KeyUser           = "user"
)

// Identity is the authentication predicate the cart ledger consults on
// every mutation attempt.
type Identity interface {
	IsAuthenticated() bool
}
