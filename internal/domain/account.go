package domain

import (
	"strconv"
	"time"
)

// Identity is the composite key naming one account. Neither field alone
// identifies an account.
type Identity struct {
	CardNumber uint64
	PIN        uint64
}

func NewIdentity(card, pin uint64) Identity {
	return Identity{CardNumber: card, PIN: pin}
}

// String omits the PIN so identities are safe to print.
func (id Identity) String() string {
	return "card " + strconv.FormatUint(id.CardNumber, 10)
}

type Account struct {
	Identity   Identity
	HolderName string
	Balance    Money
	CreatedAt  time.Time
}
