package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

func marriageFixture(t *testing.T) (*memStore, *memBlobs, *MarriageUsecase, domain.Parish) {
	t.Helper()
	store := newMemStore()
	_, parish := store.seedParish()
	blobs := newMemBlobs()
	uc := NewMarriageUsecase(store, store, store, store, store, blobs)
	return store, blobs, uc, parish
}

func extendedMarriage() sacristy.CreateMarriageRequest {
	return sacristy.CreateMarriageRequest{
		MarriageDate:      "2024-09-14",
		OfficiatingPriest: "Fr. X",
		Parish:            "St Peter",
		Groom:             &sacristy.PartyInput{FullName: "John Smith"},
		Bride:             &sacristy.PartyInput{FullName: "Jane Doe"},
		Witnesses: []sacristy.WitnessInput{
			{FullName: "Witness One"},
			{FullName: "Witness Two"},
		},
	}
}

func TestMarriageCreateExtended(t *testing.T) {
	_, _, uc, parish := marriageFixture(t)

	view, err := uc.Create(context.Background(), parish.ID, extendedMarriage())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(view.Parties) != 2 {
		t.Fatalf("expected groom and bride rows, got %d", len(view.Parties))
	}
	roles := map[domain.PartyRole]bool{}
	for _, p := range view.Parties {
		roles[p.Role] = true
	}
	if !roles[domain.RoleGroom] || !roles[domain.RoleBride] {
		t.Fatalf("expected one GROOM and one BRIDE, got %+v", view.Parties)
	}
	if len(view.Witnesses) != 2 {
		t.Fatalf("expected 2 witnesses, got %d", len(view.Witnesses))
	}
}

func TestMarriageCreateExtendedTooFewWitnesses(t *testing.T) {
	store, _, uc, parish := marriageFixture(t)

	req := extendedMarriage()
	req.Witnesses = []sacristy.WitnessInput{
		{FullName: "Witness One"},
		{FullName: "   "}, // blank names do not count
	}

	_, err := uc.Create(context.Background(), parish.ID, req)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.marriages) != 0 {
		t.Fatalf("no marriage may be persisted on validation failure")
	}
}

func TestMarriageCreateExtendedDanglingPartyLink(t *testing.T) {
	_, _, uc, parish := marriageFixture(t)

	req := extendedMarriage()
	bad := int64(404)
	req.Groom.BaptismID = &bad

	_, err := uc.Create(context.Background(), parish.ID, req)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for dangling party link, got %v", err)
	}
}

func TestMarriageCreateMissingParishID(t *testing.T) {
	store, _, uc, _ := marriageFixture(t)

	_, err := uc.Create(context.Background(), 0, extendedMarriage())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing parishId, got %v", err)
	}
	if len(store.marriages) != 0 {
		t.Fatalf("nothing may be persisted without a parishId")
	}
}

func TestMarriageCreateLegacy(t *testing.T) {
	store, _, uc, parish := marriageFixture(t)

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "John", Surname: "Smith"})
	c, _ := store.AddCommunion(context.Background(), domain.Communion{BaptismID: b.ID, Source: domain.SourceInternal, CommunionDate: "2010-06-01"})
	conf, _ := store.AddConfirmation(context.Background(), domain.Confirmation{BaptismID: b.ID, CommunionID: c.ID, ConfirmationDate: "2016-05-01"})

	view, err := uc.Create(context.Background(), parish.ID, sacristy.CreateMarriageRequest{
		MarriageDate:      "2024-09-14",
		OfficiatingPriest: "Fr. X",
		Parish:            "St Peter",
		PartnersName:      "Jane Doe",
		ConfirmationID:    &conf.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if view.ConfirmationID == nil || *view.ConfirmationID != conf.ID {
		t.Fatalf("expected confirmation link on legacy marriage")
	}
	if view.BaptismID == nil || *view.BaptismID != b.ID {
		t.Fatalf("expected derived baptism link")
	}
	if view.BaptismName != "John" {
		t.Fatalf("expected denormalized chain fields, got %+v", view)
	}
}

func TestMarriageCreateLegacyDanglingConfirmation(t *testing.T) {
	_, _, uc, parish := marriageFixture(t)

	bad := int64(404)
	_, err := uc.Create(context.Background(), parish.ID, sacristy.CreateMarriageRequest{
		MarriageDate:      "2024-09-14",
		OfficiatingPriest: "Fr. X",
		Parish:            "St Peter",
		PartnersName:      "Jane Doe",
		ConfirmationID:    &bad,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarriageUploadPartyCertificate(t *testing.T) {
	_, blobs, uc, parish := marriageFixture(t)

	uploaded, err := uc.UploadPartyCertificate(context.Background(), parish.ID, "GROOM", "baptism", Upload{
		FileName: "scan.pdf", ContentType: "application/pdf", Data: []byte("pdf"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasPrefix(uploaded.Path, "marriages/groom-baptism-") {
		t.Fatalf("unexpected key %q", uploaded.Path)
	}
	if _, ok := blobs.objects[uploaded.Path]; !ok {
		t.Fatalf("expected blob to be stored")
	}

	if _, err := uc.UploadPartyCertificate(context.Background(), parish.ID, "cousin", "baptism", Upload{
		FileName: "scan.pdf", Data: []byte("pdf"),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad role, got %v", err)
	}
}
