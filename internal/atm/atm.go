// Package atm is the account registry behind a teller machine. It binds
// (card, pin) identities to one account record and its transaction journal.
//
// An ATM is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access themselves.
package atm

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/josh-kwaku/atm-ledger/internal/config"
	"github.com/josh-kwaku/atm-ledger/internal/domain"
	"github.com/josh-kwaku/atm-ledger/internal/journal"
	"github.com/josh-kwaku/atm-ledger/internal/logging"
	"github.com/josh-kwaku/atm-ledger/internal/statement"
)

type record struct {
	account domain.Account
	journal *journal.Journal
}

type ATM struct {
	records    map[domain.Identity]*record
	statements *statement.Writer
	log        *slog.Logger
}

type Option func(*ATM)

func WithLogger(l *slog.Logger) Option {
	return func(a *ATM) { a.log = l }
}

func WithStatementWriter(w *statement.Writer) Option {
	return func(a *ATM) { a.statements = w }
}

func New(opts ...Option) *ATM {
	a := &ATM{
		records:    make(map[domain.Identity]*record),
		statements: statement.NewWriter(statement.DefaultFileMode),
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFromConfig builds an ATM logging to w at the configured level and
// writing statement files with the configured permissions.
func NewFromConfig(cfg *config.Config, w io.Writer) *ATM {
	return New(
		WithLogger(logging.New(w, "atm", cfg.LogLevel, cfg.AppEnv)),
		WithStatementWriter(statement.NewWriter(fs.FileMode(cfg.StatementFileMode))),
	)
}

func (a *ATM) RegisterAccount(card, pin uint64, name string, initialBalance float64) error {
	id := domain.NewIdentity(card, pin)

	if _, ok := a.records[id]; ok {
		a.log.Debug("registration rejected", "card_number", card, "reason", "duplicate")
		return fmt.Errorf("RegisterAccount: %s: %w", id, domain.ErrAccountExists)
	}

	balance, err := domain.MoneyFromFloat(initialBalance)
	if err != nil {
		a.log.Debug("registration rejected", "card_number", card, "reason", "amount")
		return fmt.Errorf("RegisterAccount: initial balance: %w", err)
	}

	if !validName(name) {
		a.log.Debug("registration rejected", "card_number", card, "reason", "name")
		return fmt.Errorf("RegisterAccount: %q: %w", name, domain.ErrInvalidName)
	}

	a.records[id] = &record{
		account: domain.Account{
			Identity:   id,
			HolderName: name,
			Balance:    balance,
			CreatedAt:  time.Now().UTC(),
		},
		journal: journal.New(),
	}

	a.log.Info("account registered",
		"card_number", card,
		"balance", balance.String(),
	)
	return nil
}

func (a *ATM) DepositCash(card, pin uint64, amount float64) error {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return fmt.Errorf("DepositCash: %w", err)
	}

	amt, err := domain.MoneyFromFloat(amount)
	if err != nil {
		a.log.Debug("deposit rejected", "card_number", card, "reason", "amount")
		return fmt.Errorf("DepositCash: %w", err)
	}

	before := rec.account.Balance
	after, err := before.Add(amt)
	if err != nil {
		a.log.Debug("deposit rejected", "card_number", card, "reason", "overflow")
		return fmt.Errorf("DepositCash: %w", err)
	}

	if err := a.post(rec, domain.EntryTypeDeposit, amt, before, after); err != nil {
		return fmt.Errorf("DepositCash: %w", err)
	}

	a.log.Info("cash deposited",
		"card_number", card,
		"amount", amt.String(),
		"balance", after.String(),
	)
	return nil
}

func (a *ATM) WithdrawCash(card, pin uint64, amount float64) error {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return fmt.Errorf("WithdrawCash: %w", err)
	}

	requested, err := domain.ParseAmount(amount)
	if err != nil {
		a.log.Debug("withdrawal rejected", "card_number", card, "reason", "amount")
		return fmt.Errorf("WithdrawCash: %w", err)
	}

	// Funds are checked on the exact amount, before any cent conversion.
	before := rec.account.Balance
	if requested.GreaterThan(before.Decimal()) {
		a.log.Debug("withdrawal rejected", "card_number", card, "reason", "insufficient funds")
		return fmt.Errorf("WithdrawCash: requested %s, available %s: %w", requested, before, domain.ErrInsufficientFunds)
	}

	amt, err := domain.MoneyFromDecimal(requested)
	if err != nil {
		a.log.Debug("withdrawal rejected", "card_number", card, "reason", "amount")
		return fmt.Errorf("WithdrawCash: %w", err)
	}

	after, err := before.Sub(amt)
	if err != nil {
		return fmt.Errorf("WithdrawCash: %w", err)
	}

	if err := a.post(rec, domain.EntryTypeWithdrawal, amt, before, after); err != nil {
		return fmt.Errorf("WithdrawCash: %w", err)
	}

	a.log.Info("cash withdrawn",
		"card_number", card,
		"amount", amt.String(),
		"balance", after.String(),
	)
	return nil
}

func (a *ATM) CheckBalance(card, pin uint64) (float64, error) {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return 0, fmt.Errorf("CheckBalance: %w", err)
	}
	return rec.account.Balance.Float64(), nil
}

// Account returns a copy of the account record.
func (a *ATM) Account(card, pin uint64) (domain.Account, error) {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return domain.Account{}, fmt.Errorf("Account: %w", err)
	}
	return rec.account, nil
}

// PrintLedger writes the account's statement to path, replacing any
// existing file.
func (a *ATM) PrintLedger(path string, card, pin uint64) error {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return fmt.Errorf("PrintLedger: %w", err)
	}

	if err := a.statements.WriteFile(path, statementOf(rec)); err != nil {
		return fmt.Errorf("PrintLedger: %w", err)
	}

	a.log.Info("ledger printed",
		"card_number", card,
		"path", path,
		"entries", rec.journal.Len(),
	)
	return nil
}

// WriteLedger renders the account's statement to w.
func (a *ATM) WriteLedger(w io.Writer, card, pin uint64) error {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return fmt.Errorf("WriteLedger: %w", err)
	}

	if _, err := statementOf(rec).WriteTo(w); err != nil {
		return fmt.Errorf("WriteLedger: %w", err)
	}
	return nil
}

// Entries returns the account's journal entries, oldest first.
func (a *ATM) Entries(card, pin uint64) ([]journal.Entry, error) {
	rec, err := a.lookup(card, pin)
	if err != nil {
		return nil, fmt.Errorf("Entries: %w", err)
	}
	return rec.journal.Entries(), nil
}

// GetTransactions returns every account's journal lines in insertion order.
// The result is a fresh copy; changing it does not affect the ATM.
func (a *ATM) GetTransactions() map[domain.Identity][]string {
	out := make(map[domain.Identity][]string, len(a.records))
	for id, rec := range a.records {
		out[id] = rec.journal.Strings()
	}
	return out
}

func (a *ATM) Len() int {
	return len(a.records)
}

func (a *ATM) lookup(card, pin uint64) (*record, error) {
	id := domain.NewIdentity(card, pin)
	rec, ok := a.records[id]
	if !ok {
		a.log.Debug("unknown account", "card_number", card)
		return nil, fmt.Errorf("%s: %w", id, domain.ErrAccountNotFound)
	}
	return rec, nil
}

// post records the entry and applies the new balance. Append only fails for
// an entry type the journal does not know.
func (a *ATM) post(rec *record, typ domain.EntryType, amt, before, after domain.Money) error {
	if _, err := rec.journal.Append(typ, amt, before, after); err != nil {
		return err
	}
	rec.account.Balance = after
	return nil
}

func statementOf(rec *record) statement.Statement {
	return statement.Statement{
		HolderName: rec.account.HolderName,
		CardNumber: rec.account.Identity.CardNumber,
		PIN:        rec.account.Identity.PIN,
		Lines:      rec.journal.Strings(),
	}
}

func validName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
