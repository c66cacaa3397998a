package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub/finhub.go/db/memory"
	"github.com/finhub/finhub.go/ledger"
)

func TestFindAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	created := store.CreateAccount("alice", "alice@example.com")

	found, err := store.FindAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = store.FindAccount(ctx, created.ID+1)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	account := store.CreateAccount("alice", "alice@example.com")

	first, err := store.AppendEntry(ctx, ledger.Entry{AccountID: account.ID, Kind: ledger.KindDeposit, Amount: 10})
	require.NoError(t, err)

	batch, err := store.AppendEntries(ctx, []ledger.Entry{
		{AccountID: account.ID, Kind: ledger.KindDeposit, Amount: 20},
		{AccountID: account.ID, Kind: ledger.KindDeposit, Amount: 30},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, batch[0].ID)
	assert.Equal(t, first.ID+2, batch[1].ID)
}

func TestListEntriesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	alice := store.CreateAccount("alice", "alice@example.com")
	bob := store.CreateAccount("bob", "bob@example.com")

	for i, amount := range []int64{10, 20, 30} {
		_, err := store.AppendEntry(ctx, ledger.Entry{AccountID: alice.ID, Kind: ledger.KindDeposit, Amount: amount})
		require.NoError(t, err, "append %d", i)
	}
	_, err := store.AppendEntry(ctx, ledger.Entry{AccountID: bob.ID, Kind: ledger.KindDeposit, Amount: 99})
	require.NoError(t, err)

	entries, err := store.ListEntries(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(10), entries[0].Amount)
	assert.Equal(t, int64(20), entries[1].Amount)
	assert.Equal(t, int64(30), entries[2].Amount)
}

func TestFindEntryEnforcesOwnership(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	alice := store.CreateAccount("alice", "alice@example.com")
	bob := store.CreateAccount("bob", "bob@example.com")

	entry, err := store.AppendEntry(ctx, ledger.Entry{AccountID: bob.ID, Kind: ledger.KindDeposit, Amount: 10})
	require.NoError(t, err)

	_, err = store.FindEntry(ctx, alice.ID, entry.ID)
	assert.ErrorIs(t, err, ledger.ErrEntryNotFound)

	found, err := store.FindEntry(ctx, bob.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, found)
}
