package domain

type EntryType string

const (
	EntryTypeDeposit    EntryType = "Deposit"
	EntryTypeWithdrawal EntryType = "Withdrawal"
)

func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeDeposit, EntryTypeWithdrawal:
		return true
	}
	return false
}
