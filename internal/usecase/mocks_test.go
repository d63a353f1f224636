package usecase

import (
	"context"
	"time"

	"github.com/openparish/sacristy/internal/domain"
)

// memStore is an in-memory Entity Store satisfying every repository port.
type memStore struct {
	dioceses      []domain.Diocese
	parishes      []domain.Parish
	baptisms      []domain.Baptism
	notes         []domain.BaptismNote
	communions    []domain.Communion
	confirmations []domain.Confirmation
	marriages     []domain.Marriage
	parties       []domain.MarriageParty
	witnesses     []domain.MarriageWitness
	orders        []domain.HolyOrder
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) seedParish() (domain.Diocese, domain.Parish) {
	d, _ := m.AddDiocese(context.Background(), domain.Diocese{Name: "Holy Cross"})
	p, _ := m.AddParish(context.Background(), domain.Parish{ParishName: "St Peter", DioceseID: d.ID})
	return d, p
}

func (m *memStore) ListDioceses(ctx context.Context) ([]domain.Diocese, error) {
	return m.dioceses, nil
}

func (m *memStore) GetDiocese(ctx context.Context, id int64) (domain.Diocese, error) {
	for _, d := range m.dioceses {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Diocese{}, domain.NotFoundError{Resource: "diocese"}
}

func (m *memStore) AddDiocese(ctx context.Context, d domain.Diocese) (domain.Diocese, error) {
	d.ID = int64(len(m.dioceses) + 1)
	m.dioceses = append(m.dioceses, d)
	return d, nil
}

func (m *memStore) ListParishes(ctx context.Context, dioceseID int64) ([]domain.Parish, error) {
	out := []domain.Parish{}
	for _, p := range m.parishes {
		if p.DioceseID == dioceseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) GetParish(ctx context.Context, id int64) (domain.Parish, error) {
	for _, p := range m.parishes {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Parish{}, domain.NotFoundError{Resource: "parish"}
}

func (m *memStore) AddParish(ctx context.Context, p domain.Parish) (domain.Parish, error) {
	p.ID = int64(len(m.parishes) + 1)
	m.parishes = append(m.parishes, p)
	return p, nil
}

func (m *memStore) ListBaptisms(ctx context.Context, parishID int64) ([]domain.Baptism, error) {
	out := []domain.Baptism{}
	for _, b := range m.baptisms {
		if b.ParishID == parishID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) GetBaptism(ctx context.Context, id int64) (domain.Baptism, error) {
	for _, b := range m.baptisms {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Baptism{}, domain.NotFoundError{Resource: "baptism"}
}

func (m *memStore) AddBaptism(ctx context.Context, b domain.Baptism) (domain.Baptism, error) {
	b.ID = int64(len(m.baptisms) + 1)
	m.baptisms = append(m.baptisms, b)
	return b, nil
}

func (m *memStore) UpdateBaptismNote(ctx context.Context, id int64, note string) (domain.Baptism, error) {
	for i, b := range m.baptisms {
		if b.ID == id {
			m.baptisms[i].Note = note
			m.notes = append(m.notes, domain.BaptismNote{
				ID:        int64(len(m.notes) + 1),
				BaptismID: id,
				Content:   note,
				CreatedAt: time.Now(),
			})
			return m.baptisms[i], nil
		}
	}
	return domain.Baptism{}, domain.NotFoundError{Resource: "baptism"}
}

func (m *memStore) BaptismNotes(ctx context.Context, baptismID int64) ([]domain.BaptismNote, error) {
	out := []domain.BaptismNote{}
	for _, n := range m.notes {
		if n.BaptismID == baptismID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) ListCommunions(ctx context.Context, parishID int64) ([]domain.Communion, error) {
	out := []domain.Communion{}
	for _, c := range m.communions {
		if b, err := m.GetBaptism(ctx, c.BaptismID); err == nil && b.ParishID == parishID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) GetCommunion(ctx context.Context, id int64) (domain.Communion, error) {
	for _, c := range m.communions {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Communion{}, domain.NotFoundError{Resource: "communion"}
}

func (m *memStore) AddCommunion(ctx context.Context, c domain.Communion) (domain.Communion, error) {
	c.ID = int64(len(m.communions) + 1)
	m.communions = append(m.communions, c)
	return c, nil
}

func (m *memStore) ListConfirmations(ctx context.Context, parishID int64) ([]domain.Confirmation, error) {
	out := []domain.Confirmation{}
	for _, c := range m.confirmations {
		if b, err := m.GetBaptism(ctx, c.BaptismID); err == nil && b.ParishID == parishID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) GetConfirmation(ctx context.Context, id int64) (domain.Confirmation, error) {
	for _, c := range m.confirmations {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Confirmation{}, domain.NotFoundError{Resource: "confirmation"}
}

func (m *memStore) AddConfirmation(ctx context.Context, c domain.Confirmation) (domain.Confirmation, error) {
	c.ID = int64(len(m.confirmations) + 1)
	m.confirmations = append(m.confirmations, c)
	return c, nil
}

func (m *memStore) ListMarriages(ctx context.Context, parishID int64) ([]domain.Marriage, error) {
	out := []domain.Marriage{}
	for _, mr := range m.marriages {
		if mr.ParishID == parishID {
			out = append(out, mr)
		}
	}
	return out, nil
}

func (m *memStore) GetMarriage(ctx context.Context, id int64) (domain.Marriage, error) {
	for _, mr := range m.marriages {
		if mr.ID == id {
			return mr, nil
		}
	}
	return domain.Marriage{}, domain.NotFoundError{Resource: "marriage"}
}

func (m *memStore) AddMarriage(ctx context.Context, mr domain.Marriage, parties []domain.MarriageParty, witnesses []domain.MarriageWitness) (domain.Marriage, error) {
	mr.ID = int64(len(m.marriages) + 1)
	m.marriages = append(m.marriages, mr)
	for _, p := range parties {
		p.ID = int64(len(m.parties) + 1)
		p.MarriageID = mr.ID
		m.parties = append(m.parties, p)
	}
	for _, w := range witnesses {
		w.ID = int64(len(m.witnesses) + 1)
		w.MarriageID = mr.ID
		m.witnesses = append(m.witnesses, w)
	}
	return mr, nil
}

func (m *memStore) MarriageParties(ctx context.Context, marriageID int64) ([]domain.MarriageParty, error) {
	out := []domain.MarriageParty{}
	for _, p := range m.parties {
		if p.MarriageID == marriageID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) MarriageWitnesses(ctx context.Context, marriageID int64) ([]domain.MarriageWitness, error) {
	out := []domain.MarriageWitness{}
	for _, w := range m.witnesses {
		if w.MarriageID == marriageID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memStore) ListHolyOrders(ctx context.Context) ([]domain.HolyOrder, error) {
	return m.orders, nil
}

func (m *memStore) GetHolyOrder(ctx context.Context, id int64) (domain.HolyOrder, error) {
	for _, h := range m.orders {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.HolyOrder{}, domain.NotFoundError{Resource: "holy order"}
}

func (m *memStore) AddHolyOrder(ctx context.Context, h domain.HolyOrder) (domain.HolyOrder, error) {
	h.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, h)
	return h, nil
}

// memBlobs is an in-memory BlobStore.
type memBlobs struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memBlobs) Put(ctx context.Context, key, contentType string, data []byte) error {
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memBlobs) Get(ctx context.Context, key string) ([]byte, string, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, "", domain.NotFoundError{Resource: "certificate file"}
	}
	return data, m.types[key], nil
}

type memCache struct {
	entries map[string]any
	hits    int
	sets    int
}

func newMemCache() *memCache { return &memCache{entries: map[string]any{}} }

func (m *memCache) Get(ctx context.Context, key string, dst any) bool {
	// a write-through marker cache; tests only count traffic
	if _, ok := m.entries[key]; ok {
		m.hits++
	}
	return false
}

func (m *memCache) Set(ctx context.Context, key string, v any) {
	m.entries[key] = v
	m.sets++
}

func (m *memCache) Invalidate(ctx context.Context, key string) {
	delete(m.entries, key)
}

type mockMailer struct {
	configured bool
	sentTo     string
	filename   string
}

func (m *mockMailer) Configured() bool { return m.configured }

func (m *mockMailer) SendCertificate(ctx context.Context, to, subject, filename string, pdf []byte) error {
	m.sentTo = to
	m.filename = filename
	return nil
}

type mockRenderer struct{}

func (mockRenderer) BaptismCertificate(b domain.Baptism, p domain.Parish, d domain.Diocese) ([]byte, error) {
	return []byte("%PDF baptism"), nil
}

func (mockRenderer) CommunionCertificate(c domain.Communion, b domain.Baptism, p domain.Parish, d domain.Diocese) ([]byte, error) {
	return []byte("%PDF communion"), nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) bool { return false }
func (noopCache) Set(ctx context.Context, key string, v any)        {}
func (noopCache) Invalidate(ctx context.Context, key string)        {}
