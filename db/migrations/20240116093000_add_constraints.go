package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- every entry moves a positive amount
				ALTER TABLE ledger_entries
				ADD CONSTRAINT check_positive_amount
				CHECK (amount > 0);

			-- transfer legs always reference another account
				ALTER TABLE ledger_entries
				ADD CONSTRAINT check_not_same_account
				CHECK (counterparty_id IS NULL OR counterparty_id != account_id);

			-- last line of defense: no debit may drive a balance negative.
			-- The application serializes check-then-append per account, this
			-- trigger catches anything that slips past it.
				CREATE OR REPLACE FUNCTION check_balance()
					RETURNS TRIGGER AS $$
				DECLARE
					current_balance BIGINT;
				BEGIN
					SELECT INTO current_balance COALESCE(SUM(
						CASE
							WHEN kind = 'deposit' THEN amount
							WHEN kind = 'withdraw' THEN -amount
							WHEN kind = 'transfer' AND outgoing THEN -amount
							ELSE amount
						END), 0)
					FROM ledger_entries
					WHERE account_id = NEW.account_id;

					IF current_balance < 0
					THEN
						RAISE EXCEPTION 'invalid balance [account_id:%] balance [%]',
						NEW.account_id,
						current_balance;
					END IF;
					RETURN NEW;
				END;
				$$ LANGUAGE plpgsql;
				CREATE TRIGGER check_balance
				AFTER INSERT OR UPDATE ON ledger_entries
				FOR EACH ROW EXECUTE PROCEDURE check_balance();
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
