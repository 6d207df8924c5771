// Package journal holds the append-only transaction log of one account.
package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/josh-kwaku/atm-ledger/internal/domain"
)

type Entry struct {
	ID            uuid.UUID
	Type          domain.EntryType
	Amount        domain.Money
	BalanceBefore domain.Money
	BalanceAfter  domain.Money
	CreatedAt     time.Time
}

// String is the human-readable journal line, e.g. "Deposit - Amount: $100.00".
func (e Entry) String() string {
	return fmt.Sprintf("%s - Amount: $%s", e.Type, e.Amount)
}

// Journal preserves insertion order. Entries are never edited or removed.
// The zero value is an empty journal ready for use.
type Journal struct {
	entries []Entry
}

func New() *Journal {
	return &Journal{}
}

// Append records one completed money movement and returns the stored entry.
func (j *Journal) Append(typ domain.EntryType, amount, before, after domain.Money) (Entry, error) {
	if !typ.IsValid() {
		return Entry{}, fmt.Errorf("Append: unknown entry type %q", typ)
	}

	e := Entry{
		ID:            uuid.New(),
		Type:          typ,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		CreatedAt:     time.Now().UTC(),
	}
	j.entries = append(j.entries, e)
	return e, nil
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns a copy so callers cannot rewrite history.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *Journal) Strings() []string {
	out := make([]string, len(j.entries))
	for i, e := range j.entries {
		out[i] = e.String()
	}
	return out
}
