package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pawlig/pawlig/internal/model"
	"github.com/pawlig/pawlig/internal/obs"
)

// OrderLine is one requested cart entry. There is deliberately no
// price field: totals are always computed from the server-held product
// price, so a tampered client price is unrepresentable.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// OrderInput is a requested order.
type OrderInput struct {
	Items                []OrderLine `json:"items"`
	ShippingMunicipality string      `json:"shippingMunicipality"`
	ShippingAddress      string      `json:"shippingAddress"`
	PaymentMethod        string      `json:"paymentMethod"`
}

func (in *OrderInput) validate() error {
	if len(in.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "cart must not be empty"}
	}
	for i, line := range in.Items {
		if line.ProductID == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].productId", i), Reason: "required"}
		}
		if line.Quantity < 1 {
			return &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be at least 1"}
		}
	}
	if in.ShippingMunicipality == "" {
		return &ValidationError{Field: "shippingMunicipality", Reason: "required"}
	}
	if in.ShippingAddress == "" {
		return &ValidationError{Field: "shippingAddress", Reason: "required"}
	}
	if in.PaymentMethod == "" {
		return &ValidationError{Field: "paymentMethod", Reason: "required"}
	}
	return nil
}

// PlaceOrder validates the cart, then atomically re-prices it from the
// authoritative product rows, decrements stock, and persists the order
// with per-item price snapshots. Any failure inside the transaction
// rolls back every decrement; no partial order survives.
func (s *Service) PlaceOrder(ctx context.Context, userID string, in OrderInput) (*model.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var orderID string
	err := s.store.Transact(ctx, func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			var p model.Product
			if err := tx.First(&p, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: line.ProductID}
				}
				return err
			}
			if line.Quantity > p.Stock {
				return &InsufficientStockError{ProductID: p.ID, Name: p.Name, Available: p.Stock}
			}
			// The decrement is conditioned on the stock still covering
			// the quantity, so a concurrent order that won the row
			// cannot drive stock negative. Zero rows affected means we
			// lost that race.
			res := tx.Model(&model.Product{}).
				Where("id = ? AND stock >= ?", p.ID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{ProductID: p.ID, Name: p.Name, Available: p.Stock}
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(line.Quantity)))
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Quantity:  line.Quantity,
				UnitPrice: p.Price,
			})
		}
		order := model.Order{
			UserID:               userID,
			Total:                total,
			ShippingMunicipality: in.ShippingMunicipality,
			ShippingAddress:      in.ShippingAddress,
			PaymentMethod:        in.PaymentMethod,
			Items:                items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	created, err := s.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	obs.Logger.Info("order_placed",
		"order_id", created.ID,
		"user_id", userID,
		"total", created.Total.String(),
		"item_count", len(created.Items),
	)
	return created, nil
}

// OrderByID loads one order with its items and their products.
func (s *Service) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := s.store.DB(ctx).
		Preload("Items.Product").
		First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "order", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrdersOf lists a user's orders, newest first, items and products
// included.
func (s *Service) OrdersOf(ctx context.Context, userID string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := s.store.DB(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
