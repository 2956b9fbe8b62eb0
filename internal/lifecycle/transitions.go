package lifecycle

import "time"

// Transitions are the paired open/close lifecycle operations. They are
// unconditional state mutators: business-rule gating ("can only retire when
// employed") belongs to the caller, which is expected to check Status first.
type Transitions struct {
	periods PeriodRepository
}

// NewTransitions creates a Transitions writer over the given store.
func NewTransitions(periods PeriodRepository) *Transitions {
	return &Transitions{periods: periods}
}

func (t *Transitions) Employ(owner Owner, at time.Time) error {
	return t.periods.Open(owner, KindEmployment, at)
}

func (t *Transitions) Release(owner Owner, at time.Time) error {
	return t.periods.Close(owner, KindEmployment, at)
}

func (t *Transitions) Suspend(owner Owner, at time.Time) error {
	return t.periods.Open(owner, KindSuspension, at)
}

func (t *Transitions) Reinstate(owner Owner, at time.Time) error {
	return t.periods.Close(owner, KindSuspension, at)
}

func (t *Transitions) Injure(owner Owner, at time.Time) error {
	return t.periods.Open(owner, KindInjury, at)
}

func (t *Transitions) Heal(owner Owner, at time.Time) error {
	return t.periods.Close(owner, KindInjury, at)
}

// Retire opens a retirement period and, in the same transaction, closes any
// open activity period at the same instant: retirement implies deactivation
// for owners that are activated at all (titles, stables).
func (t *Transitions) Retire(owner Owner, at time.Time) error {
	return t.periods.WithTransaction(func(tx PeriodRepository) error {
		if err := tx.Close(owner, KindActivity, at); err != nil {
			return err
		}
		return tx.Open(owner, KindRetirement, at)
	})
}

// ReleaseAndRetire ends employment and opens the retirement period in one
// transaction, the usual exit for roster talent.
func (t *Transitions) ReleaseAndRetire(owner Owner, at time.Time) error {
	return t.periods.WithTransaction(func(tx PeriodRepository) error {
		if err := tx.Close(owner, KindEmployment, at); err != nil {
			return err
		}
		return tx.Open(owner, KindRetirement, at)
	})
}

func (t *Transitions) Unretire(owner Owner, at time.Time) error {
	return t.periods.Close(owner, KindRetirement, at)
}

// Activate debuts or re-establishes an owner (titles, stables).
func (t *Transitions) Activate(owner Owner, at time.Time) error {
	return t.periods.Open(owner, KindActivity, at)
}

// Deactivate pulls an owner from circulation without retiring it.
func (t *Transitions) Deactivate(owner Owner, at time.Time) error {
	return t.periods.Close(owner, KindActivity, at)
}
