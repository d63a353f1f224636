package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	sacristy "github.com/openparish/sacristy"
	"github.com/openparish/sacristy/internal/domain"
)

// HolyOrderUsecase records ordinations. Holy orders sit at the top of the
// chain and are listed diocese-wide rather than per parish.
type HolyOrderUsecase struct {
	baptisms      BaptismRepository
	communions    CommunionRepository
	confirmations ConfirmationRepository
	orders        HolyOrderRepository
}

func NewHolyOrderUsecase(
	baptisms BaptismRepository,
	communions CommunionRepository,
	confirmations ConfirmationRepository,
	orders HolyOrderRepository,
) *HolyOrderUsecase {
	return &HolyOrderUsecase{
		baptisms:      baptisms,
		communions:    communions,
		confirmations: confirmations,
		orders:        orders,
	}
}

func (uc *HolyOrderUsecase) List(ctx context.Context) ([]domain.HolyOrderView, error) {
	orders, err := uc.orders.ListHolyOrders(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.HolyOrderView, 0, len(orders))
	for _, h := range orders {
		views = append(views, uc.view(ctx, h))
	}
	return views, nil
}

func (uc *HolyOrderUsecase) Get(ctx context.Context, id int64) (domain.HolyOrderView, error) {
	h, err := uc.orders.GetHolyOrder(ctx, id)
	if err != nil {
		return domain.HolyOrderView{}, err
	}
	return uc.view(ctx, h), nil
}

func (uc *HolyOrderUsecase) view(ctx context.Context, h domain.HolyOrder) domain.HolyOrderView {
	view := domain.HolyOrderView{HolyOrder: h}
	if confirmation, err := uc.confirmations.GetConfirmation(ctx, h.ConfirmationID); err == nil {
		view.ConfirmationDate = confirmation.ConfirmationDate
	}
	if b, err := uc.baptisms.GetBaptism(ctx, h.BaptismID); err == nil {
		presented := domain.PresentBaptism(b)
		view.BaptismName = presented.BaptismName
		view.Surname = presented.Surname
		view.DateOfBirth = presented.DateOfBirth
	}
	return view
}

// Create records an ordination against an existing confirmation. The baptism
// and communion ids are derived from the confirmation.
func (uc *HolyOrderUsecase) Create(ctx context.Context, in sacristy.CreateHolyOrderRequest) (domain.HolyOrder, error) {
	ctx, span := tracer.Start(ctx, "HolyOrder.Usecase.Create")
	defer span.End()

	if err := validateDate(in.OrdinationDate, "ordinationDate"); err != nil {
		span.RecordError(err)
		return domain.HolyOrder{}, err
	}
	if strings.TrimSpace(in.OfficiatingBishop) == "" {
		return domain.HolyOrder{}, domain.Invalid("officiatingBishop is required")
	}

	orderType := domain.OrderType(strings.ToUpper(strings.TrimSpace(in.OrderType)))
	switch orderType {
	case domain.OrderDeacon, domain.OrderPriest:
	default:
		return domain.HolyOrder{}, domain.Invalid("orderType must be DEACON or PRIEST")
	}

	confirmation, err := uc.confirmations.GetConfirmation(ctx, in.ConfirmationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.HolyOrder{}, domain.Invalid("confirmation %d does not exist", in.ConfirmationID)
		}
		span.RecordError(err)
		return domain.HolyOrder{}, err
	}

	return uc.orders.AddHolyOrder(ctx, domain.HolyOrder{
		BaptismID:         confirmation.BaptismID,
		CommunionID:       confirmation.CommunionID,
		ConfirmationID:    confirmation.ID,
		OrdinationDate:    in.OrdinationDate,
		OrderType:         orderType,
		OfficiatingBishop: in.OfficiatingBishop,
		ParishID:          in.ParishID,
		CreatedAt:         time.Now().UTC(),
	})
}
