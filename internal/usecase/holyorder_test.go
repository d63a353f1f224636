package usecase

import (
	"context"
	"errors"
	"testing"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

func holyOrderFixture(t *testing.T) (*memStore, *HolyOrderUsecase, domain.Confirmation) {
	t.Helper()
	store := newMemStore()
	_, parish := store.seedParish()

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "John", Surname: "Smith", DateOfBirth: "1995-03-01"})
	c, _ := store.AddCommunion(context.Background(), domain.Communion{BaptismID: b.ID, Source: domain.SourceInternal, CommunionDate: "2004-06-01"})
	conf, _ := store.AddConfirmation(context.Background(), domain.Confirmation{BaptismID: b.ID, CommunionID: c.ID, ConfirmationDate: "2010-05-01"})

	return store, NewHolyOrderUsecase(store, store, store, store), conf
}

func TestHolyOrderCreateDerivesChain(t *testing.T) {
	_, uc, conf := holyOrderFixture(t)

	created, err := uc.Create(context.Background(), sacristy.CreateHolyOrderRequest{
		ConfirmationID:    conf.ID,
		OrdinationDate:    "2024-06-29",
		OrderType:         "priest",
		OfficiatingBishop: "Bishop Y",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.OrderType != domain.OrderPriest {
		t.Fatalf("expected normalized order type, got %s", created.OrderType)
	}
	if created.BaptismID != conf.BaptismID || created.CommunionID != conf.CommunionID {
		t.Fatalf("expected chain ids derived from the confirmation, got %+v", created)
	}

	view, err := uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.BaptismName != "John" || view.ConfirmationDate != "2010-05-01" {
		t.Fatalf("expected denormalized view fields, got %+v", view)
	}
}

func TestHolyOrderCreateBadOrderType(t *testing.T) {
	_, uc, conf := holyOrderFixture(t)

	_, err := uc.Create(context.Background(), sacristy.CreateHolyOrderRequest{
		ConfirmationID:    conf.ID,
		OrdinationDate:    "2024-06-29",
		OrderType:         "CARDINAL",
		OfficiatingBishop: "Bishop Y",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHolyOrderCreateDanglingConfirmation(t *testing.T) {
	_, uc, _ := holyOrderFixture(t)

	_, err := uc.Create(context.Background(), sacristy.CreateHolyOrderRequest{
		ConfirmationID:    404,
		OrdinationDate:    "2024-06-29",
		OrderType:         "DEACON",
		OfficiatingBishop: "Bishop Y",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestConfirmationCreateDerivesBaptism(t *testing.T) {
	store := newMemStore()
	_, parish := store.seedParish()
	uc := NewConfirmationUsecase(store, store, store, store, noopCache{})

	b, _ := store.AddBaptism(context.Background(), domain.Baptism{ParishID: parish.ID, Source: domain.SourceInternal, BaptismName: "Jane", Surname: "Doe"})
	c, _ := store.AddCommunion(context.Background(), domain.Communion{BaptismID: b.ID, Source: domain.SourceInternal, CommunionDate: "2015-06-01"})

	created, err := uc.Create(context.Background(), sacristy.CreateConfirmationRequest{
		CommunionID:       c.ID,
		ConfirmationDate:  "2021-05-01",
		OfficiatingBishop: "Bishop Y",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.BaptismID != b.ID {
		t.Fatalf("expected baptism id derived from the communion")
	}

	view, err := uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.CommunionDate != "2015-06-01" || view.BaptismName != "Jane" {
		t.Fatalf("expected denormalized view, got %+v", view)
	}
}

func TestConfirmationCreateDanglingCommunion(t *testing.T) {
	store := newMemStore()
	store.seedParish()
	uc := NewConfirmationUsecase(store, store, store, store, noopCache{})

	_, err := uc.Create(context.Background(), sacristy.CreateConfirmationRequest{
		CommunionID:       404,
		ConfirmationDate:  "2021-05-01",
		OfficiatingBishop: "Bishop Y",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
