package queries

import (
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimals kept for amounts computed in SQL.
const moneyScale = 2

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toMoney(amount decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(amount.Round(moneyScale))
}

func toOptionalMoney(amount decimal.NullDecimal) (*kernel.Money, error) {
	if !amount.Valid {
		return nil, nil //nolint:nilnil // absent amount
	}
	m, err := toMoney(amount.Decimal)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
