package storage

// Writer stages changes across all tables. Reads through a Writer see its
// own staged changes; nothing is visible to readers until Commit.
type Writer struct {
	storage *Storage
	closed  bool

	users         *staged[User]
	accounts      *staged[Account]
	categories    *staged[Category]
	transactions  *staged[Transaction]
	goals         *staged[SavingsGoal]
	contributions *staged[GoalContribution]

	Users         WriteRows[User]
	Accounts      WriteRows[Account]
	Categories    WriteRows[Category]
	Transactions  WriteRows[Transaction]
	Goals         WriteRows[SavingsGoal]
	Contributions WriteRows[GoalContribution]
}

func newWriter(s *Storage) *Writer {
	w := &Writer{
		storage:       s,
		users:         newStaged(committed[User]{s: s, t: s.users}),
		accounts:      newStaged(committed[Account]{s: s, t: s.accounts}),
		categories:    newStaged(committed[Category]{s: s, t: s.categories}),
		transactions:  newStaged(committed[Transaction]{s: s, t: s.transactions}),
		goals:         newStaged(committed[SavingsGoal]{s: s, t: s.goals}),
		contributions: newStaged(committed[GoalContribution]{s: s, t: s.contributions}),
	}
	w.Users = newWriteRows(w.users)
	w.Accounts = newWriteRows(w.accounts)
	w.Categories = newWriteRows(w.categories)
	w.Transactions = newWriteRows(w.transactions)
	w.Goals = newWriteRows(w.goals)
	w.Contributions = newWriteRows(w.contributions)
	return w
}

// FindUserByEmail returns the user registered with email, or nil.
func (w *Writer) FindUserByEmail(email string) *User {
	return findUserByEmail(w.Users.Rows, email)
}

// ListContributions returns the contributions made to goalID, ordered by id.
func (w *Writer) ListContributions(goalID int64) []*GoalContribution {
	return listContributions(w.Contributions.Rows, goalID)
}

// Commit atomically applies every staged change and releases the writer slot.
func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	w.storage.mu.Lock()
	w.users.apply()
	w.accounts.apply()
	w.categories.apply()
	w.transactions.apply()
	w.goals.apply()
	w.contributions.apply()
	w.storage.mu.Unlock()

	<-w.storage.writeSlot
	return nil
}

// Rollback discards every staged change and releases the writer slot.
func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	<-w.storage.writeSlot
	return nil
}
