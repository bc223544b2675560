package journal

import (
	"fmt"
	"slices"
)

func (s *Store) Categories() []string {
	return s.account().Categories
}

// AddCategory appends name unless it is already present. Names are
// case-sensitive.
func (s *Store) AddCategory(name string) error {
	acct := s.account()
	if slices.Contains(acct.Categories, name) {
		return fmt.Errorf("%q: %w", name, ErrCategoryExists)
	}
	acct.Categories = append(acct.Categories, name)
	return s.commit("add category")
}

// RenameCategory renames from to to in place and moves every trade filed
// under from along with it.
func (s *Store) RenameCategory(from, to string) error {
	acct := s.account()
	i := slices.Index(acct.Categories, from)
	if i < 0 {
		return fmt.Errorf("%q: %w", from, ErrCategoryNotFound)
	}
	if from == to {
		return nil
	}
	if slices.Contains(acct.Categories, to) {
		return fmt.Errorf("%q: %w", to, ErrCategoryExists)
	}

	acct.Categories[i] = to
	for j := range acct.Trades {
		if acct.Trades[j].Category == from {
			acct.Trades[j].Category = to
		}
	}
	return s.commit("rename category")
}

// DeleteCategory removes name and clears it from every trade. The trades
// themselves are kept.
func (s *Store) DeleteCategory(name string) error {
	acct := s.account()
	i := slices.Index(acct.Categories, name)
	if i < 0 {
		return fmt.Errorf("%q: %w", name, ErrCategoryNotFound)
	}

	acct.Categories = slices.Delete(acct.Categories, i, i+1)
	for j := range acct.Trades {
		if acct.Trades[j].Category == name {
			acct.Trades[j].Category = ""
		}
	}
	return s.commit("delete category")
}
