package journal

import (
	"fmt"
	"math"
	"time"
)

type DepositPatch struct {
	Type   *DepositType `json:"type,omitempty"`
	Amount *Number      `json:"amount,omitempty"`
	Date   *time.Time   `json:"date,omitempty"`
	Notes  *string      `json:"notes,omitempty"`
}

func (p DepositPatch) apply(d *Deposit) {
	setIf(&d.Type, p.Type)
	if p.Amount != nil {
		d.Amount = magnitude(*p.Amount)
	}
	setIf(&d.Date, p.Date)
	setIf(&d.Notes, p.Notes)
}

// magnitude strips the sign; direction is carried by the deposit type.
func magnitude(n Number) Number {
	return Number(math.Abs(float64(n)))
}

func (s *Store) Deposits() []Deposit {
	return s.account().Deposits
}

func (s *Store) Deposit(id string) (Deposit, bool) {
	i := s.depositIndex(id)
	if i < 0 {
		return Deposit{}, false
	}
	return s.account().Deposits[i], true
}

func (s *Store) depositIndex(id string) int {
	for i, d := range s.account().Deposits {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// AddDeposit stores d under a fresh id. A zero Date defaults to now.
func (s *Store) AddDeposit(d Deposit) (Deposit, error) {
	d.ID = s.newID()
	if d.Date.IsZero() {
		d.Date = s.now().UTC()
	}
	d.Amount = magnitude(d.Amount)
	acct := s.account()
	acct.Deposits = append(acct.Deposits, d)
	return d, s.commit("add deposit")
}

func (s *Store) UpdateDeposit(id string, p DepositPatch) (Deposit, error) {
	i := s.depositIndex(id)
	if i < 0 {
		return Deposit{}, fmt.Errorf("deposit %q: %w", id, ErrNotFound)
	}
	d := &s.account().Deposits[i]
	p.apply(d)
	return *d, s.commit("update deposit")
}

func (s *Store) DeleteDeposit(id string) (bool, error) {
	return s.DeleteDeposits([]string{id})
}

func (s *Store) DeleteDeposits(ids []string) (bool, error) {
	n, err := s.RemoveDeposits(ids)
	return n > 0, err
}

// RemoveDeposits is DeleteDeposits returning how many deposits were removed.
func (s *Store) RemoveDeposits(ids []string) (int, error) {
	acct := s.account()
	kept, removed := removeByID(acct.Deposits, ids, func(d Deposit) string { return d.ID })
	if removed == 0 {
		return 0, nil
	}
	acct.Deposits = kept
	return removed, s.commit(fmt.Sprintf("delete %d deposits", removed))
}
