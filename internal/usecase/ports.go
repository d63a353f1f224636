package usecase

import (
	"context"

	"github.com/openparish/sacristy/internal/domain"
)

// Entity Store contract. Two interchangeable backends satisfy these
// interfaces: the gorm/postgres repositories and the JSON-file store. The
// choice is invisible to the usecases.

// RegistryRepository defines persistence for dioceses and parishes.
type RegistryRepository interface {
	ListDioceses(ctx context.Context) ([]domain.Diocese, error)
	GetDiocese(ctx context.Context, id int64) (domain.Diocese, error)
	AddDiocese(ctx context.Context, d domain.Diocese) (domain.Diocese, error)
	ListParishes(ctx context.Context, dioceseID int64) ([]domain.Parish, error)
	GetParish(ctx context.Context, id int64) (domain.Parish, error)
	AddParish(ctx context.Context, p domain.Parish) (domain.Parish, error)
}

// BaptismRepository defines persistence for baptisms and their note history.
type BaptismRepository interface {
	ListBaptisms(ctx context.Context, parishID int64) ([]domain.Baptism, error)
	GetBaptism(ctx context.Context, id int64) (domain.Baptism, error)
	AddBaptism(ctx context.Context, b domain.Baptism) (domain.Baptism, error)
	// UpdateBaptismNote replaces the current note and appends a
	// BaptismNote history row in the same write.
	UpdateBaptismNote(ctx context.Context, id int64, note string) (domain.Baptism, error)
	BaptismNotes(ctx context.Context, baptismID int64) ([]domain.BaptismNote, error)
}

type CommunionRepository interface {
	ListCommunions(ctx context.Context, parishID int64) ([]domain.Communion, error)
	GetCommunion(ctx context.Context, id int64) (domain.Communion, error)
	AddCommunion(ctx context.Context, c domain.Communion) (domain.Communion, error)
}

type ConfirmationRepository interface {
	ListConfirmations(ctx context.Context, parishID int64) ([]domain.Confirmation, error)
	GetConfirmation(ctx context.Context, id int64) (domain.Confirmation, error)
	AddConfirmation(ctx context.Context, c domain.Confirmation) (domain.Confirmation, error)
}

type MarriageRepository interface {
	ListMarriages(ctx context.Context, parishID int64) ([]domain.Marriage, error)
	GetMarriage(ctx context.Context, id int64) (domain.Marriage, error)
	AddMarriage(ctx context.Context, m domain.Marriage, parties []domain.MarriageParty, witnesses []domain.MarriageWitness) (domain.Marriage, error)
	MarriageParties(ctx context.Context, marriageID int64) ([]domain.MarriageParty, error)
	MarriageWitnesses(ctx context.Context, marriageID int64) ([]domain.MarriageWitness, error)
}

type HolyOrderRepository interface {
	ListHolyOrders(ctx context.Context) ([]domain.HolyOrder, error)
	GetHolyOrder(ctx context.Context, id int64) (domain.HolyOrder, error)
	AddHolyOrder(ctx context.Context, h domain.HolyOrder) (domain.HolyOrder, error)
}

// BlobStore holds uploaded certificate files, keyed by generated filename
// under a per-type prefix.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, string, error)
}

// CertificateRenderer produces the generated one-page certificate documents.
type CertificateRenderer interface {
	BaptismCertificate(b domain.Baptism, p domain.Parish, d domain.Diocese) ([]byte, error)
	CommunionCertificate(c domain.Communion, b domain.Baptism, p domain.Parish, d domain.Diocese) ([]byte, error)
}

// Mailer dispatches a rendered certificate as a PDF attachment.
type Mailer interface {
	Configured() bool
	SendCertificate(ctx context.Context, to, subject, filename string, pdf []byte) error
}

// ViewCache caches denormalized list views between writes. Implementations
// must treat failures as misses; a nil-safe no-op implementation is used when
// no cache backend is configured.
type ViewCache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any)
	Invalidate(ctx context.Context, key string)
}
