package actions

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/storage"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

// run performs action in its own write and commits on success.
func run(t *testing.T, s *storage.Storage, action IAction) error {
	t.Helper()
	w, err := s.Write(context.Background())
	require.NoError(t, err)
	if err := action.Perform(context.Background(), w); err != nil {
		require.NoError(t, w.Rollback())
		return err
	}
	require.NoError(t, w.Commit())
	return nil
}

type fixture struct {
	s        *storage.Storage
	userID   int64
	account  int64
	category int64
}

func newFixture(t *testing.T, balance string) fixture {
	t.Helper()
	s := storage.NewStorage()

	user := &RegisterUser{Email: "demo@example.com", FirstName: "Demo", LastName: "User"}
	require.NoError(t, run(t, s, user))

	account := &CreateAccount{UserID: user.Result.ID, Name: "Checking", Type: "checking", Balance: dec(balance)}
	require.NoError(t, run(t, s, account))

	category := &CreateCategory{UserID: user.Result.ID, Name: "Groceries", Type: "expense"}
	require.NoError(t, run(t, s, category))

	return fixture{
		s:        s,
		userID:   user.Result.ID,
		account:  account.Result.ID,
		category: category.Result.ID,
	}
}

func (f fixture) balance(t *testing.T, accountID int64) decimal.Decimal {
	t.Helper()
	account := f.s.Read().Accounts.FindByID(accountID)
	require.NotNil(t, account)
	return account.Balance
}

func (f fixture) createTx(t *testing.T, amount string, txType ledger.TransactionType) *storage.Transaction {
	t.Helper()
	action := &CreateTransaction{
		UserID:     f.userID,
		AccountID:  f.account,
		CategoryID: f.category,
		Amount:     dec(amount),
		Type:       txType,
		Date:       "2024-01-15",
	}
	require.NoError(t, run(t, f.s, action))
	return action.Result
}

// -- Users --

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t, "0")

	err := run(t, f.s, &RegisterUser{Email: "demo@example.com"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t, "0")

	action := &ChangePassword{UserID: f.userID}
	require.NoError(t, run(t, f.s, action))
	assert.NotNil(t, action.Result.PasswordChangedAt)

	assert.ErrorIs(t, run(t, f.s, &ChangePassword{UserID: 99}), storage.ErrNotFound)
}

// -- Accounts and categories --

func TestCreateAccount_Defaults(t *testing.T) {
	f := newFixture(t, "0")

	account := f.s.Read().Accounts.FindByID(f.account)
	require.NotNil(t, account)
	assert.Equal(t, "USD", account.Currency)
	assert.True(t, account.IsActive)
	assert.True(t, account.Balance.IsZero())
}

func TestUpdateAccount_KeepsOmittedFields(t *testing.T) {
	f := newFixture(t, "100")

	action := &UpdateAccount{UserID: f.userID, ID: f.account, Name: ptr("Main")}
	require.NoError(t, run(t, f.s, action))
	assert.Equal(t, "Main", action.Result.Name)
	assert.Equal(t, "checking", action.Result.Type)
	assert.True(t, action.Result.Balance.Equal(dec("100")))
}

func TestUpdateAccount_OtherUser(t *testing.T) {
	f := newFixture(t, "100")

	err := run(t, f.s, &UpdateAccount{UserID: f.userID + 1, ID: f.account, Name: ptr("x")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCategory_Lifecycle(t *testing.T) {
	f := newFixture(t, "0")

	category := f.s.Read().Categories.FindByID(f.category)
	require.NotNil(t, category)
	assert.Equal(t, "#6B7280", category.Color)

	update := &UpdateCategory{UserID: f.userID, ID: f.category, Color: ptr("#FF0000")}
	require.NoError(t, run(t, f.s, update))
	assert.Equal(t, "Groceries", update.Result.Name)
	assert.Equal(t, "#FF0000", update.Result.Color)

	require.NoError(t, run(t, f.s, &DeleteCategory{UserID: f.userID, ID: f.category}))
	assert.ErrorIs(t, run(t, f.s, &DeleteCategory{UserID: f.userID, ID: f.category}), storage.ErrNotFound)
}

// -- Transactions --

func TestTransactions_BalanceScenario(t *testing.T) {
	f := newFixture(t, "0")

	f.createTx(t, "3000.00", ledger.Income)
	assert.True(t, f.balance(t, f.account).Equal(dec("3000.00")))

	tx := f.createTx(t, "150.00", ledger.Expense)
	assert.True(t, f.balance(t, f.account).Equal(dec("2850.00")))

	require.NoError(t, run(t, f.s, &UpdateTransaction{UserID: f.userID, ID: tx.ID, Amount: ptr(dec("200.00"))}))
	assert.True(t, f.balance(t, f.account).Equal(dec("2800.00")))

	require.NoError(t, run(t, f.s, &DeleteTransaction{UserID: f.userID, ID: tx.ID}))
	assert.True(t, f.balance(t, f.account).Equal(dec("3000.00")))
}

func TestCreateTransaction_InvalidReferences(t *testing.T) {
	f := newFixture(t, "0")

	err := run(t, f.s, &CreateTransaction{UserID: f.userID, AccountID: 99, CategoryID: f.category, Amount: dec("1"), Type: ledger.Income})
	assert.ErrorIs(t, err, ErrInvalidAccount)
	assert.ErrorIs(t, err, ErrInvalidReference)

	err = run(t, f.s, &CreateTransaction{UserID: f.userID, AccountID: f.account, CategoryID: 99, Amount: dec("1"), Type: ledger.Income})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.Empty(t, f.s.Read().Transactions.ListByUser(f.userID), "failed creates leave nothing behind")
	assert.True(t, f.balance(t, f.account).IsZero())
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	f := newFixture(t, "0")

	other := &RegisterUser{Email: "other@example.com"}
	require.NoError(t, run(t, f.s, other))

	err := run(t, f.s, &CreateTransaction{UserID: other.Result.ID, AccountID: f.account, CategoryID: f.category, Amount: dec("1"), Type: ledger.Income})
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestUpdateTransaction_MoveBetweenAccounts(t *testing.T) {
	f := newFixture(t, "500")

	savings := &CreateAccount{UserID: f.userID, Name: "Savings", Type: "savings", Balance: dec("1000")}
	require.NoError(t, run(t, f.s, savings))

	tx := f.createTx(t, "100", ledger.Expense)
	assert.True(t, f.balance(t, f.account).Equal(dec("400")))

	update := &UpdateTransaction{UserID: f.userID, ID: tx.ID, AccountID: ptr(savings.Result.ID)}
	require.NoError(t, run(t, f.s, update))

	assert.True(t, f.balance(t, f.account).Equal(dec("500")))
	assert.True(t, f.balance(t, savings.Result.ID).Equal(dec("900")))
	assert.Equal(t, savings.Result.ID, update.Result.AccountID)
}

func TestUpdateTransaction_FlipType(t *testing.T) {
	f := newFixture(t, "0")

	tx := f.createTx(t, "50", ledger.Expense)
	require.NoError(t, run(t, f.s, &UpdateTransaction{UserID: f.userID, ID: tx.ID, Type: ptr(ledger.Income)}))
	assert.True(t, f.balance(t, f.account).Equal(dec("50")))
}

func TestUpdateTransaction_InvalidAccountLeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t, "0")

	tx := f.createTx(t, "50", ledger.Income)
	err := run(t, f.s, &UpdateTransaction{UserID: f.userID, ID: tx.ID, AccountID: ptr(int64(99)), Amount: ptr(dec("70"))})
	assert.ErrorIs(t, err, ErrInvalidAccount)

	assert.True(t, f.balance(t, f.account).Equal(dec("50")))
	stored := f.s.Read().Transactions.FindByID(tx.ID)
	require.NotNil(t, stored)
	assert.True(t, stored.Amount.Equal(dec("50")))
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	f := newFixture(t, "0")
	err := run(t, f.s, &UpdateTransaction{UserID: f.userID, ID: 42})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteTransaction_DanglingAccount(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	f := newFixture(t, "0")

	tx := f.createTx(t, "75", ledger.Income)
	require.NoError(t, run(t, f.s, &DeleteAccount{UserID: f.userID, ID: f.account}))

	require.NoError(t, run(t, f.s, &DeleteTransaction{UserID: f.userID, ID: tx.ID}))
	assert.Nil(t, f.s.Read().Transactions.FindByID(tx.ID))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Ledger.DanglingAccount", entry.Message)
	assert.Equal(t, "delete_transaction", entry.Data["operation"])
	assert.Equal(t, f.account, entry.Data["accountID"])
}

func TestUpdateTransaction_DanglingOldAccount(t *testing.T) {
	f := newFixture(t, "0")

	other := &CreateAccount{UserID: f.userID, Name: "Cash", Type: "cash"}
	require.NoError(t, run(t, f.s, other))

	tx := f.createTx(t, "30", ledger.Income)
	require.NoError(t, run(t, f.s, &DeleteAccount{UserID: f.userID, ID: f.account}))

	require.NoError(t, run(t, f.s, &UpdateTransaction{UserID: f.userID, ID: tx.ID, AccountID: ptr(other.Result.ID)}))
	assert.True(t, f.balance(t, other.Result.ID).Equal(dec("30")))
}

// -- Savings goals --

func TestSavingsGoal_Contributions(t *testing.T) {
	f := newFixture(t, "0")

	goal := &CreateSavingsGoal{UserID: f.userID, Name: "Emergency Fund", TargetAmount: dec("1000")}
	require.NoError(t, run(t, f.s, goal))
	assert.Equal(t, "#10B981", goal.Result.Color)
	assert.False(t, goal.Result.IsAchieved)

	first := &ContributeToGoal{UserID: f.userID, GoalID: goal.Result.ID, Amount: dec("400"), ContributionDate: "2024-01-01"}
	require.NoError(t, run(t, f.s, first))
	assert.True(t, first.Goal.CurrentAmount.Equal(dec("400")))
	assert.False(t, first.Goal.IsAchieved)
	assert.Nil(t, first.Result.TransactionID)

	second := &ContributeToGoal{UserID: f.userID, GoalID: goal.Result.ID, Amount: dec("600"), ContributionDate: "2024-02-01"}
	require.NoError(t, run(t, f.s, second))
	assert.True(t, second.Goal.CurrentAmount.Equal(dec("1000")))
	assert.True(t, second.Goal.IsAchieved)

	assert.Len(t, f.s.Read().ListContributions(goal.Result.ID), 2)
}

func TestContributeToGoal_InvalidGoal(t *testing.T) {
	f := newFixture(t, "0")

	err := run(t, f.s, &ContributeToGoal{UserID: f.userID, GoalID: 7, Amount: dec("1")})
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestUpdateSavingsGoal_RecomputesAchieved(t *testing.T) {
	f := newFixture(t, "0")

	goal := &CreateSavingsGoal{UserID: f.userID, Name: "Trip", TargetAmount: dec("500")}
	require.NoError(t, run(t, f.s, goal))
	require.NoError(t, run(t, f.s, &ContributeToGoal{UserID: f.userID, GoalID: goal.Result.ID, Amount: dec("300")}))

	lower := &UpdateSavingsGoal{UserID: f.userID, ID: goal.Result.ID, TargetAmount: ptr(dec("300"))}
	require.NoError(t, run(t, f.s, lower))
	assert.True(t, lower.Result.IsAchieved)
	assert.Equal(t, "Trip", lower.Result.Name)

	raise := &UpdateSavingsGoal{UserID: f.userID, ID: goal.Result.ID, TargetAmount: ptr(dec("900"))}
	require.NoError(t, run(t, f.s, raise))
	assert.False(t, raise.Result.IsAchieved)
	assert.True(t, raise.Result.CurrentAmount.Equal(dec("300")))
}

func TestDeleteSavingsGoal(t *testing.T) {
	f := newFixture(t, "0")

	goal := &CreateSavingsGoal{UserID: f.userID, Name: "Trip", TargetAmount: dec("500")}
	require.NoError(t, run(t, f.s, goal))

	assert.ErrorIs(t, run(t, f.s, &DeleteSavingsGoal{UserID: f.userID + 1, ID: goal.Result.ID}), storage.ErrNotFound)
	require.NoError(t, run(t, f.s, &DeleteSavingsGoal{UserID: f.userID, ID: goal.Result.ID}))
	assert.Nil(t, f.s.Read().Goals.FindByID(goal.Result.ID))
}
