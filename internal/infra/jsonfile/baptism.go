package jsonfile

import (
	"context"

	"github.com/openparish/sacristy/internal/domain"
)

func (s *Store) ListBaptisms(ctx context.Context, parishID int64) ([]domain.Baptism, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Baptism](s, fileBaptisms)
	if err != nil {
		return nil, err
	}
	out := []domain.Baptism{}
	for _, b := range items {
		if b.ParishID == parishID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) GetBaptism(ctx context.Context, id int64) (domain.Baptism, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Baptism](s, fileBaptisms)
	if err != nil {
		return domain.Baptism{}, err
	}
	for _, b := range items {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Baptism{}, domain.NotFoundError{Resource: "baptism"}
}

func (s *Store) AddBaptism(ctx context.Context, b domain.Baptism) (domain.Baptism, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Baptism](s, fileBaptisms)
	if err != nil {
		return domain.Baptism{}, err
	}
	b.ID = nextID(items, func(x domain.Baptism) int64 { return x.ID })
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now()
	}
	items = append(items, b)
	if err := write(s, fileBaptisms, items); err != nil {
		return domain.Baptism{}, err
	}
	return b, nil
}

// UpdateBaptismNote replaces the baptism's note and appends a history row.
// The history write happens after the baptism write; a crash between the two
// loses only the history row, never the current note.
func (s *Store) UpdateBaptismNote(ctx context.Context, id int64, note string) (domain.Baptism, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Baptism](s, fileBaptisms)
	if err != nil {
		return domain.Baptism{}, err
	}

	idx := -1
	for i, b := range items {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Baptism{}, domain.NotFoundError{Resource: "baptism"}
	}

	items[idx].Note = note
	if err := write(s, fileBaptisms, items); err != nil {
		return domain.Baptism{}, err
	}

	notes, err := read[domain.BaptismNote](s, fileBaptismNotes)
	if err != nil {
		return domain.Baptism{}, err
	}
	notes = append(notes, domain.BaptismNote{
		ID:        nextID(notes, func(x domain.BaptismNote) int64 { return x.ID }),
		BaptismID: id,
		Content:   note,
		CreatedAt: now(),
	})
	if err := write(s, fileBaptismNotes, notes); err != nil {
		return domain.Baptism{}, err
	}

	return items[idx], nil
}

func (s *Store) BaptismNotes(ctx context.Context, baptismID int64) ([]domain.BaptismNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := read[domain.BaptismNote](s, fileBaptismNotes)
	if err != nil {
		return nil, err
	}
	out := []domain.BaptismNote{}
	for _, n := range notes {
		if n.BaptismID == baptismID {
			out = append(out, n)
		}
	}
	return out, nil
}
