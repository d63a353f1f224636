package jsonfile

import (
	"context"

	"github.com/openparish/sacristy/internal/domain"
)

func (s *Store) ListDioceses(ctx context.Context) ([]domain.Diocese, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return read[domain.Diocese](s, fileDioceses)
}

func (s *Store) GetDiocese(ctx context.Context, id int64) (domain.Diocese, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Diocese](s, fileDioceses)
	if err != nil {
		return domain.Diocese{}, err
	}
	for _, d := range items {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Diocese{}, domain.NotFoundError{Resource: "diocese"}
}

func (s *Store) AddDiocese(ctx context.Context, d domain.Diocese) (domain.Diocese, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Diocese](s, fileDioceses)
	if err != nil {
		return domain.Diocese{}, err
	}
	d.ID = nextID(items, func(x domain.Diocese) int64 { return x.ID })
	items = append(items, d)
	if err := write(s, fileDioceses, items); err != nil {
		return domain.Diocese{}, err
	}
	return d, nil
}

func (s *Store) ListParishes(ctx context.Context, dioceseID int64) ([]domain.Parish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Parish](s, fileParishes)
	if err != nil {
		return nil, err
	}
	out := []domain.Parish{}
	for _, p := range items {
		if p.DioceseID == dioceseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetParish(ctx context.Context, id int64) (domain.Parish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Parish](s, fileParishes)
	if err != nil {
		return domain.Parish{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Parish{}, domain.NotFoundError{Resource: "parish"}
}

func (s *Store) AddParish(ctx context.Context, p domain.Parish) (domain.Parish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := read[domain.Parish](s, fileParishes)
	if err != nil {
		return domain.Parish{}, err
	}
	p.ID = nextID(items, func(x domain.Parish) int64 { return x.ID })
	items = append(items, p)
	if err := write(s, fileParishes, items); err != nil {
		return domain.Parish{}, err
	}
	return p, nil
}
