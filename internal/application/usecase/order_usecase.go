package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. La creación inserta cabecera y líneas en una sola tx;
// no genera movimientos de inventario (las salidas se registran en el libro aparte).
type OrderUseCase struct {
	txRunner TxRunner
	repo     repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, repo: repo}
}

// Create valida el pedido y sus líneas antes de abrir la transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	status := entity.OrderStatusPending
	if in.OrderStatus != "" {
		status = entity.OrderStatus(in.OrderStatus)
	}
	order := &entity.Order{
		CustomerID: in.CustomerID,
		OrderDate:  in.OrderDate,
		Status:     status,
		CreatedBy:  in.CreatedBy,
		Items:      make([]entity.OrderItem, 0, len(in.Items)),
	}
	total := decimal.Zero
	for i, it := range in.Items {
		if err := validation.Amount(fmt.Sprintf("order_items[%d].quantity", i), *it.Quantity); err != nil {
			return nil, err
		}
		if err := validation.Amount(fmt.Sprintf("order_items[%d].unit_price", i), *it.UnitPrice); err != nil {
			return nil, err
		}
		item := entity.OrderItem{ProductID: it.ProductID, Quantity: *it.Quantity, UnitPrice: *it.UnitPrice}
		total = total.Add(item.Subtotal())
		order.Items = append(order.Items, item)
	}
	order.TotalAmount = total.Round(2)
	if in.TotalAmount != nil {
		order.TotalAmount = *in.TotalAmount
	}
	if err := validation.Amount("total_amount", order.TotalAmount); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, _ repository.ProcurementRepository) error {
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devuelve el pedido con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

func (uc *OrderUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx, toPage(page))
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Update modifica la cabecera; las líneas no cambian.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerID != nil {
		o.CustomerID = *in.CustomerID
	}
	if in.OrderDate != nil {
		o.OrderDate = *in.OrderDate
	}
	if in.OrderStatus != nil {
		o.Status = entity.OrderStatus(*in.OrderStatus)
	}
	if in.TotalAmount != nil {
		if err := validation.Amount("total_amount", *in.TotalAmount); err != nil {
			return nil, err
		}
		o.TotalAmount = *in.TotalAmount
	}
	if in.CreatedBy != nil {
		o.CreatedBy = in.CreatedBy
	}
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Delete borra el pedido con sus líneas (CASCADE). Con movimientos, entregas o pagos -> ErrConflict.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundOrNil(uc.repo.Delete(ctx, id))
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		OrderStatus: string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Items:       items,
	}
}
