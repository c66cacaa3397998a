package ledger

// canDebit is the funds policy: a debit is admissible only when the balance
// projected from the full history covers it. Callers must evaluate it inside
// the same critical section as the append that follows it.
func canDebit(balance, amount int64) bool {
	return balance >= amount
}
