package planilla

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	ErrInvalidModification   = errors.New("invalid modification")
	ErrDuplicateModification = errors.New("duplicate modification")
	ErrUnknownModification   = errors.New("unknown modification")
	ErrInvalidPenalty        = errors.New("invalid penalty")
	ErrUnknownPenalty        = errors.New("unknown penalty")
)

// Listener is notified with the new report, or ErrNoData, after every change.
type Listener func(*Report, error)

// Session holds the editable inputs of a contract and the report computed from
// them. Every change recomputes the report from scratch on a new snapshot of
// the inputs; reports already handed out are never modified.
type Session struct {
	mu        sync.Mutex
	in        Input
	cache     *Cache
	report    *Report
	err       error
	listeners []Listener
}

// NewSession starts a session on in.
func NewSession(in Input) *Session {
	s := &Session{in: in, cache: NewCache(16)}
	s.report, s.err = s.cache.Compute(s.in)
	return s
}

// Report returns the current report, or ErrNoData.
func (s *Session) Report() (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report, s.err
}

// Input returns a snapshot of the current inputs.
func (s *Session) Input() Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in
}

// Subscribe registers l to be notified of every change.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// CacheStats returns the hits and misses of the session cache.
func (s *Session) CacheStats() (hits, misses int) { return s.cache.Stats() }

// update applies change to a copy of the inputs and recomputes the report.
// A change mixing currencies is rejected and leaves the session unchanged.
// Listeners are called outside of the lock.
func (s *Session) update(change func(in *Input) error) error {
	notify, err := s.apply(change)
	if err != nil {
		return err
	}
	notify()
	return nil
}

// apply changes the inputs under the lock and returns the notification of the
// listeners.
func (s *Session) apply(change func(in *Input) error) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.in
	if err := change(&in); err != nil {
		return nil, err
	}
	if _, err := in.Currency(); err != nil {
		return nil, err
	}
	s.in = in
	s.report, s.err = s.cache.Compute(in)
	report, err, listeners := s.report, s.err, slices.Clone(s.listeners)
	return func() {
		for _, l := range listeners {
			l(report, err)
		}
	}, nil
}

// SetItems replaces the line items, typically after a refresh of the sheet.
func (s *Session) SetItems(items []LineItem) error {
	return s.update(func(in *Input) error {
		in.Items = slices.Clone(items)
		return nil
	})
}

// SetMaster replaces the master contract data.
func (s *Session) SetMaster(m MasterData) error {
	return s.update(func(in *Input) error {
		in.Master = m
		return nil
	})
}

// AddModification appends m. ID and name are required and IDs are unique.
func (s *Session) AddModification(m Modification) error {
	m.ID, m.Name = strings.TrimSpace(m.ID), strings.TrimSpace(m.Name)
	if m.ID == "" || m.Name == "" {
		return fmt.Errorf("%w: id and name are required", ErrInvalidModification)
	}
	if m.Days < 0 || m.Amount.IsNegative() {
		return fmt.Errorf("%w: days and amount must not be negative", ErrInvalidModification)
	}
	if m.Type == "" {
		m.Type = ChangeOrder
	}
	return s.update(func(in *Input) error {
		if slices.ContainsFunc(in.Modifications, func(x Modification) bool { return x.ID == m.ID }) {
			return fmt.Errorf("%w: %q", ErrDuplicateModification, m.ID)
		}
		in.Modifications = append(slices.Clone(in.Modifications), m)
		return nil
	})
}

// ToggleModification flips the active flag of the modification id.
func (s *Session) ToggleModification(id string) error {
	return s.update(func(in *Input) error {
		i := slices.IndexFunc(in.Modifications, func(x Modification) bool { return x.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownModification, id)
		}
		in.Modifications = slices.Clone(in.Modifications)
		in.Modifications[i].Active = !in.Modifications[i].Active
		return nil
	})
}

// RemoveModification deletes the modification id.
func (s *Session) RemoveModification(id string) error {
	return s.update(func(in *Input) error {
		i := slices.IndexFunc(in.Modifications, func(x Modification) bool { return x.ID == id })
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownModification, id)
		}
		in.Modifications = slices.Delete(slices.Clone(in.Modifications), i, i+1)
		return nil
	})
}

// RegisterPenalty registers p, replacing any penalty of the same period.
// A period outside the axis is accepted and ignored by the ledger.
func (s *Session) RegisterPenalty(p Penalty) error {
	p.Reason = strings.TrimSpace(p.Reason)
	switch {
	case p.Period < 1:
		return fmt.Errorf("%w: period must be 1 or more, got %d", ErrInvalidPenalty, p.Period)
	case p.Amount.IsNegative():
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidPenalty)
	case p.Reason == "":
		return fmt.Errorf("%w: a reason is required", ErrInvalidPenalty)
	}
	return s.update(func(in *Input) error {
		in.Penalties = in.Penalties.Register(p)
		return nil
	})
}

// RemovePenalty deletes the penalty of period.
func (s *Session) RemovePenalty(period int) error {
	return s.update(func(in *Input) error {
		if _, ok := in.Penalties.For(period); !ok {
			return fmt.Errorf("%w: period %d", ErrUnknownPenalty, period)
		}
		in.Penalties = in.Penalties.Remove(period)
		return nil
	})
}
