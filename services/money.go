package services

import (
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderTotal sums price times quantity over the items, rounded to cents
func OrderTotal(items []models.OrderItemRequest) float64 {
	total := decimal.Zero
	for _, item := range items {
		price := decimal.Zero
		if item.Price != nil {
			price = decimal.NewFromFloat(*item.Price)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2).InexactFloat64()
}

// Remaining is total minus paid. It goes negative on overpayment.
func Remaining(total, paid float64) float64 {
	return decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(paid)).Round(2).InexactFloat64()
}

func roundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

type paidRow struct {
	OrderID uint
	Paid    float64
}

// paidAmounts returns the payment sum per order; orders without payments are absent
func paidAmounts(db *gorm.DB, orderIDs []uint) (map[uint]float64, error) {
	paid := make(map[uint]float64, len(orderIDs))
	if len(orderIDs) == 0 {
		return paid, nil
	}

	var rows []paidRow
	err := db.Model(&models.Payment{}).
		Select("order_id, COALESCE(SUM(amount), 0) AS paid").
		Where("order_id IN ?", orderIDs).
		Group("order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		paid[row.OrderID] = roundMoney(row.Paid)
	}
	return paid, nil
}
