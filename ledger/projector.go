package ledger

// projectBalance folds an account's entry history into its current balance.
// The balance is never stored anywhere, it is always recomputed from the
// full history so it cannot drift from the recorded entries.
func projectBalance(entries []Entry) int64 {
	var balance int64
	for _, entry := range entries {
		balance += entry.Credit()
	}
	return balance
}
