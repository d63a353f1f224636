package jsonfile

import (
	"context"

	"github.com/openparish/sacristy/internal/domain"
)

// Communions and confirmations carry no parish column of their own; parish
// scope is reached through the baptism they reference.

func (s *Store) parishBaptismSet(parishID int64) (map[int64]bool, error) {
	baptisms, err := read[domain.Baptism](s, fileBaptisms)
	if err != nil {
		return nil, err
	}
	set := map[int64]bool{}
	for _, b := range baptisms {
		if b.ParishID == parishID {
			set[b.ID] = true
		}
	}
	return set, nil
}

func (s *Store) ListCommunions(ctx context.Context, parishID int64) ([]domain.Communion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.parishBaptismSet(parishID)
	if err != nil {
		return nil, err
	}
	items, err := read[domain.Communion](s, fileCommunions)
	if err != nil {
		return nil, err
	}
	out := []domain.Communion{}
	for _, c := range items {
		if set[c.BaptismID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) GetCommunion(ctx context.Context, id int64) (domain.Communion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Communion](s, fileCommunions)
	if err != nil {
		return domain.Communion{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Communion{}, domain.NotFoundError{Resource: "communion"}
}

func (s *Store) AddCommunion(ctx context.Context, c domain.Communion) (domain.Communion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Communion](s, fileCommunions)
	if err != nil {
		return domain.Communion{}, err
	}
	c.ID = nextID(items, func(x domain.Communion) int64 { return x.ID })
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
	items = append(items, c)
	if err := write(s, fileCommunions, items); err != nil {
		return domain.Communion{}, err
	}
	return c, nil
}

func (s *Store) ListConfirmations(ctx context.Context, parishID int64) ([]domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.parishBaptismSet(parishID)
	if err != nil {
		return nil, err
	}
	items, err := read[domain.Confirmation](s, fileConfirmations)
	if err != nil {
		return nil, err
	}
	out := []domain.Confirmation{}
	for _, c := range items {
		if set[c.BaptismID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) GetConfirmation(ctx context.Context, id int64) (domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Confirmation](s, fileConfirmations)
	if err != nil {
		return domain.Confirmation{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Confirmation{}, domain.NotFoundError{Resource: "confirmation"}
}

func (s *Store) AddConfirmation(ctx context.Context, c domain.Confirmation) (domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Confirmation](s, fileConfirmations)
	if err != nil {
		return domain.Confirmation{}, err
	}
	c.ID = nextID(items, func(x domain.Confirmation) int64 { return x.ID })
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now()
	}
	items = append(items, c)
	if err := write(s, fileConfirmations, items); err != nil {
		return domain.Confirmation{}, err
	}
	return c, nil
}

func (s *Store) ListMarriages(ctx context.Context, parishID int64) ([]domain.Marriage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Marriage](s, fileMarriages)
	if err != nil {
		return nil, err
	}
	out := []domain.Marriage{}
	for _, m := range items {
		if m.ParishID == parishID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Store) GetMarriage(ctx context.Context, id int64) (domain.Marriage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Marriage](s, fileMarriages)
	if err != nil {
		return domain.Marriage{}, err
	}
	for _, m := range items {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Marriage{}, domain.NotFoundError{Resource: "marriage"}
}

// AddMarriage writes the marriage, then its parties and witnesses. The three
// files are written sequentially; this is not atomic across files.
func (s *Store) AddMarriage(ctx context.Context, m domain.Marriage, parties []domain.MarriageParty, witnesses []domain.MarriageWitness) (domain.Marriage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Marriage](s, fileMarriages)
	if err != nil {
		return domain.Marriage{}, err
	}
	m.ID = nextID(items, func(x domain.Marriage) int64 { return x.ID })
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}
	items = append(items, m)
	if err := write(s, fileMarriages, items); err != nil {
		return domain.Marriage{}, err
	}

	if len(parties) > 0 {
		existing, err := read[domain.MarriageParty](s, fileParties)
		if err != nil {
			return domain.Marriage{}, err
		}
		id := nextID(existing, func(x domain.MarriageParty) int64 { return x.ID })
		for i := range parties {
			parties[i].ID = id
			parties[i].MarriageID = m.ID
			id++
		}
		if err := write(s, fileParties, append(existing, parties...)); err != nil {
			return domain.Marriage{}, err
		}
	}

	if len(witnesses) > 0 {
		existing, err := read[domain.MarriageWitness](s, fileWitnesses)
		if err != nil {
			return domain.Marriage{}, err
		}
		id := nextID(existing, func(x domain.MarriageWitness) int64 { return x.ID })
		for i := range witnesses {
			witnesses[i].ID = id
			witnesses[i].MarriageID = m.ID
			id++
		}
		if err := write(s, fileWitnesses, append(existing, witnesses...)); err != nil {
			return domain.Marriage{}, err
		}
	}

	return m, nil
}

func (s *Store) MarriageParties(ctx context.Context, marriageID int64) ([]domain.MarriageParty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.MarriageParty](s, fileParties)
	if err != nil {
		return nil, err
	}
	out := []domain.MarriageParty{}
	for _, p := range items {
		if p.MarriageID == marriageID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) MarriageWitnesses(ctx context.Context, marriageID int64) ([]domain.MarriageWitness, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.MarriageWitness](s, fileWitnesses)
	if err != nil {
		return nil, err
	}
	out := []domain.MarriageWitness{}
	for _, w := range items {
		if w.MarriageID == marriageID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *Store) ListHolyOrders(ctx context.Context) ([]domain.HolyOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := read[domain.HolyOrder](s, fileHolyOrders)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.HolyOrder{}
	}
	return items, nil
}

func (s *Store) GetHolyOrder(ctx context.Context, id int64) (domain.HolyOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.HolyOrder](s, fileHolyOrders)
	if err != nil {
		return domain.HolyOrder{}, err
	}
	for _, h := range items {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.HolyOrder{}, domain.NotFoundError{Resource: "holy order"}
}

func (s *Store) AddHolyOrder(ctx context.Context, h domain.HolyOrder) (domain.HolyOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.HolyOrder](s, fileHolyOrders)
	if err != nil {
		return domain.HolyOrder{}, err
	}
	h.ID = nextID(items, func(x domain.HolyOrder) int64 { return x.ID })
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now()
	}
	items = append(items, h)
	if err := write(s, fileHolyOrders, items); err != nil {
		return domain.HolyOrder{}, err
	}
	return h, nil
}
