package interfaces

import (
	"context"

	"portfolio_studio/internal/domain/entities"
)

// ICheckoutRepository abstracts DynamoDB persistence for Checkout.

type ICheckoutRepository interface {
	Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error)
	GetByID(ctx context.Context, id string) (entities.Checkout, error)
	List(ctx context.Context) ([]entities.Checkout, error)
	UpdateStatus(ctx context.Context, id string, status entities.CheckoutStatus) (entities.Checkout, error)
	Delete(ctx context.Context, id string) error
}

// IChargeRepository abstracts DynamoDB persistence for Charge.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	ListByCheckoutID(ctx context.Context, checkoutID string) ([]entities.Charge, error)
}
