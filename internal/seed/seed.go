// Package seed loads demo data from a TOML file and writes it through the
// operator, so seeded transactions move balances like API-created ones.
package seed

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/ledger"
	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// File is the top level of a seed file.
type File struct {
	Users []User `toml:"users"`
}

type User struct {
	Email        string        `toml:"email"`
	FirstName    string        `toml:"first_name"`
	LastName     string        `toml:"last_name"`
	Accounts     []Account     `toml:"accounts"`
	Categories   []Category    `toml:"categories"`
	Transactions []Transaction `toml:"transactions"`
	Goals        []Goal        `toml:"goals"`
}

type Account struct {
	Name           string          `toml:"name"`
	Type           string          `toml:"type"`
	OpeningBalance decimal.Decimal `toml:"opening_balance"`
	Currency       string          `toml:"currency"`
}

type Category struct {
	Name  string `toml:"name"`
	Type  string `toml:"type"`
	Color string `toml:"color"`
	Icon  string `toml:"icon"`
}

// Transaction refers to its account and category by name.
type Transaction struct {
	Account     string          `toml:"account"`
	Category    string          `toml:"category"`
	Amount      decimal.Decimal `toml:"amount"`
	Type        string          `toml:"type"`
	Description string          `toml:"description"`
	Date        string          `toml:"date"`
}

type Goal struct {
	Name          string          `toml:"name"`
	Description   string          `toml:"description"`
	TargetAmount  decimal.Decimal `toml:"target_amount"`
	TargetDate    string          `toml:"target_date"`
	Color         string          `toml:"color"`
	Contributions []Contribution  `toml:"contributions"`
}

type Contribution struct {
	Amount      decimal.Decimal `toml:"amount"`
	Date        string          `toml:"date"`
	Description string          `toml:"description"`
}

type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Load decodes the seed file at path. Unknown keys are an error.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("seed: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("seed: unknown key %q in %s", undecoded[0].String(), path)
	}
	return &f, nil
}

// Apply writes every entity in f. It stops at the first failure; entities
// written before it stay in place.
func Apply(ctx context.Context, p processor, f *File, logger *logrus.Logger) error {
	for _, u := range f.Users {
		if err := applyUser(ctx, p, u); err != nil {
			return fmt.Errorf("seed: user %s: %w", u.Email, err)
		}
		logger.WithFields(logrus.Fields{
			"email":        u.Email,
			"accounts":     len(u.Accounts),
			"transactions": len(u.Transactions),
			"goals":        len(u.Goals),
		}).Info("Seed.User.Applied")
	}
	return nil
}

func applyUser(ctx context.Context, p processor, u User) error {
	register := &actions.RegisterUser{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
	if err := p.Process(ctx, register); err != nil {
		return err
	}
	userID := register.Result.ID

	accounts := make(map[string]int64, len(u.Accounts))
	for _, a := range u.Accounts {
		create := &actions.CreateAccount{
			UserID:   userID,
			Name:     a.Name,
			Type:     a.Type,
			Balance:  a.OpeningBalance,
			Currency: a.Currency,
		}
		if err := p.Process(ctx, create); err != nil {
			return fmt.Errorf("account %s: %w", a.Name, err)
		}
		accounts[a.Name] = create.Result.ID
	}

	categories := make(map[string]int64, len(u.Categories))
	for _, c := range u.Categories {
		create := &actions.CreateCategory{UserID: userID, Name: c.Name, Type: c.Type, Color: c.Color, Icon: c.Icon}
		if err := p.Process(ctx, create); err != nil {
			return fmt.Errorf("category %s: %w", c.Name, err)
		}
		categories[c.Name] = create.Result.ID
	}

	for i, t := range u.Transactions {
		accountID, ok := accounts[t.Account]
		if !ok {
			return fmt.Errorf("transaction %d: unknown account %q", i, t.Account)
		}
		categoryID, ok := categories[t.Category]
		if !ok {
			return fmt.Errorf("transaction %d: unknown category %q", i, t.Category)
		}
		txType := ledger.TransactionType(t.Type)
		if !txType.Valid() {
			return fmt.Errorf("transaction %d: type must be income or expense, got %q", i, t.Type)
		}
		create := &actions.CreateTransaction{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      t.Amount,
			Type:        txType,
			Description: t.Description,
			Date:        t.Date,
		}
		if err := p.Process(ctx, create); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	for _, g := range u.Goals {
		create := &actions.CreateSavingsGoal{
			UserID:       userID,
			Name:         g.Name,
			Description:  g.Description,
			TargetAmount: g.TargetAmount,
			TargetDate:   g.TargetDate,
			Color:        g.Color,
		}
		if err := p.Process(ctx, create); err != nil {
			return fmt.Errorf("goal %s: %w", g.Name, err)
		}
		for _, c := range g.Contributions {
			contribute := &actions.ContributeToGoal{
				UserID:           userID,
				GoalID:           create.Result.ID,
				Amount:           c.Amount,
				ContributionDate: c.Date,
				Description:      c.Description,
			}
			if err := p.Process(ctx, contribute); err != nil {
				return fmt.Errorf("goal %s contribution: %w", g.Name, err)
			}
		}
	}
	return nil
}
