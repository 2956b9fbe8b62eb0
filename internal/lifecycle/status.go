package lifecycle

import "time"

// Status derives boolean state from the period store. Every predicate
// returns false for an owner with no history; none of them mutate anything.
type Status struct {
	periods PeriodRepository
}

// NewStatus creates a Status reader over the given store.
func NewStatus(periods PeriodRepository) *Status {
	return &Status{periods: periods}
}

func (s *Status) hasCurrent(owner Owner, kind Kind, now time.Time) (bool, error) {
	current, err := s.periods.Current(owner, kind, now)
	if err != nil {
		return false, err
	}
	return current != nil, nil
}

func (s *Status) IsEmployed(owner Owner, now time.Time) (bool, error) {
	return s.hasCurrent(owner, KindEmployment, now)
}

func (s *Status) IsSuspended(owner Owner, now time.Time) (bool, error) {
	return s.hasCurrent(owner, KindSuspension, now)
}

func (s *Status) IsInjured(owner Owner, now time.Time) (bool, error) {
	return s.hasCurrent(owner, KindInjury, now)
}

func (s *Status) IsRetired(owner Owner, now time.Time) (bool, error) {
	return s.hasCurrent(owner, KindRetirement, now)
}

func (s *Status) IsCurrentlyActive(owner Owner, now time.Time) (bool, error) {
	return s.hasCurrent(owner, KindActivity, now)
}

// IsUnactivated reports an owner that has never had an activity period at
// all. Distinct from IsInactive, which only needs the absence of an open one.
func (s *Status) IsUnactivated(owner Owner) (bool, error) {
	any, err := s.periods.HasAny(owner, KindActivity)
	if err != nil {
		return false, err
	}
	return !any, nil
}

func (s *Status) IsInactive(owner Owner, now time.Time) (bool, error) {
	active, err := s.IsCurrentlyActive(owner, now)
	if err != nil {
		return false, err
	}
	return !active, nil
}

func (s *Status) HasFutureEmployment(owner Owner, now time.Time) (bool, error) {
	future, err := s.periods.Future(owner, KindEmployment, now)
	if err != nil {
		return false, err
	}
	return future != nil, nil
}

func (s *Status) HasFutureActivity(owner Owner, now time.Time) (bool, error) {
	future, err := s.periods.Future(owner, KindActivity, now)
	if err != nil {
		return false, err
	}
	return future != nil, nil
}

func (s *Status) HasEmploymentHistory(owner Owner) (bool, error) {
	return s.periods.HasClosed(owner, KindEmployment)
}

func (s *Status) HasRetirementHistory(owner Owner) (bool, error) {
	return s.periods.HasClosed(owner, KindRetirement)
}

// IsBookable is the eligibility predicate shared by wrestlers, managers and
// referees: employed and carrying no blocking condition.
func (s *Status) IsBookable(owner Owner, now time.Time) (bool, error) {
	employed, err := s.IsEmployed(owner, now)
	if err != nil || !employed {
		return false, err
	}
	for _, kind := range []Kind{KindSuspension, KindInjury, KindRetirement} {
		blocked, err := s.hasCurrent(owner, kind, now)
		if err != nil {
			return false, err
		}
		if blocked {
			return false, nil
		}
	}
	return true, nil
}

// IsBookableTeam is the tag-team variant; teams are never injured as a unit.
func (s *Status) IsBookableTeam(owner Owner, now time.Time) (bool, error) {
	employed, err := s.IsEmployed(owner, now)
	if err != nil || !employed {
		return false, err
	}
	for _, kind := range []Kind{KindSuspension, KindRetirement} {
		blocked, err := s.hasCurrent(owner, kind, now)
		if err != nil {
			return false, err
		}
		if blocked {
			return false, nil
		}
	}
	return true, nil
}
