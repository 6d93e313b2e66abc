package storage

// Reader exposes read-only lookups. Every returned row is a copy.
type Reader struct {
	Users         Rows[User]
	Accounts      Rows[Account]
	Categories    Rows[Category]
	Transactions  Rows[Transaction]
	Goals         Rows[SavingsGoal]
	Contributions Rows[GoalContribution]
}

// FindUserByEmail returns the user registered with email, or nil.
func (r *Reader) FindUserByEmail(email string) *User {
	return findUserByEmail(r.Users, email)
}

// ListTransactions returns the transactions matching filter, ordered by id.
func (r *Reader) ListTransactions(filter TransactionFilter) []*Transaction {
	return r.Transactions.Where(filter.Match)
}

// ListContributions returns the contributions made to goalID, ordered by id.
func (r *Reader) ListContributions(goalID int64) []*GoalContribution {
	return listContributions(r.Contributions, goalID)
}

func findUserByEmail(users Rows[User], email string) *User {
	found := users.Where(func(u *User) bool {
		return u.Email == email
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func listContributions(rows Rows[GoalContribution], goalID int64) []*GoalContribution {
	return rows.Where(func(c *GoalContribution) bool {
		return c.GoalID == goalID
	})
}
