package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/openparish/sacristy/internal/domain"
)

func certificateFixture(t *testing.T, mailer *mockMailer) (*memStore, *memBlobs, *CertificateUsecase, domain.Parish) {
	t.Helper()
	store := newMemStore()
	_, parish := store.seedParish()
	blobs := newMemBlobs()
	uc := NewCertificateUsecase(store, store, store, mockRenderer{}, blobs, mailer)
	return store, blobs, uc, parish
}

func TestRenderBaptismRejectsExternal(t *testing.T) {
	store, _, uc, parish := certificateFixture(t, &mockMailer{})

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{
		ParishID: parish.ID, Source: domain.SourceExternal, BaptismName: "Jane", Surname: "Doe",
		CertificatePath: "baptisms/key",
	})

	_, err := uc.RenderBaptism(context.Background(), b.ID)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for external record, got %v", err)
	}
}

func TestExternalBaptismCertificate(t *testing.T) {
	store, blobs, uc, parish := certificateFixture(t, &mockMailer{})

	blobs.Put(context.Background(), "baptisms/key", "application/pdf", []byte("stored"))
	b, _ := store.AddBaptism(context.Background(), domain.Baptism{
		ParishID: parish.ID, Source: domain.SourceExternal, BaptismName: "Jane", Surname: "Doe",
		CertificatePath: "baptisms/key",
	})

	data, contentType, err := uc.ExternalBaptismCertificate(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("retrieval failed: %v", err)
	}
	if string(data) != "stored" || contentType != "application/pdf" {
		t.Fatalf("unexpected payload %q %q", data, contentType)
	}

	// no path recorded
	internal, _ := store.AddBaptism(context.Background(), domain.Baptism{
		ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "Jane", Surname: "Doe",
	})
	if _, _, err := uc.ExternalBaptismCertificate(context.Background(), internal.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found without a recorded path, got %v", err)
	}
}

func TestEmailBaptismCertificateUnconfigured(t *testing.T) {
	store, _, uc, parish := certificateFixture(t, &mockMailer{configured: false})

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{
		ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "Jane", Surname: "Doe",
	})

	err := uc.EmailBaptismCertificate(context.Background(), b.ID, "jane@example.com")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if err.Error() != "Email is not configured. Set RESEND_API_KEY." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestEmailBaptismCertificate(t *testing.T) {
	mailer := &mockMailer{configured: true}
	store, _, uc, parish := certificateFixture(t, mailer)

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{
		ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "Jane", Surname: "Doe",
	})

	if err := uc.EmailBaptismCertificate(context.Background(), b.ID, "not-an-address"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad address, got %v", err)
	}

	if err := uc.EmailBaptismCertificate(context.Background(), b.ID, "jane@example.com"); err != nil {
		t.Fatalf("email failed: %v", err)
	}
	if mailer.sentTo != "jane@example.com" {
		t.Fatalf("expected dispatch to recipient, got %q", mailer.sentTo)
	}
	if mailer.filename == "" {
		t.Fatalf("expected attachment filename")
	}
}

func TestRenderCommunionRejectsExternal(t *testing.T) {
	store, _, uc, parish := certificateFixture(t, &mockMailer{})

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{
		ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "Jane", Surname: "Doe",
	})
	c, _ := store.AddCommunion(context.Background(), domain.Communion{
		BaptismID: b.ID, Source: domain.SourceExternal, CommunionDate: "2020-06-01",
		CommunionCertificatePath: "communions/key",
	})

	if _, err := uc.RenderCommunion(context.Background(), c.ID); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	internal, _ := store.AddCommunion(context.Background(), domain.Communion{
		BaptismID: b.ID, Source: domain.SourceInternal, CommunionDate: "2020-06-01",
	})
	pdf, err := uc.RenderCommunion(context.Background(), internal.ID)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}
}
