package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money は金額。floatの誤差を避けるためdecimalで持ち、JSONでは"25.50"形式の文字列にする
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// テスト・シード用
func MoneyFromFloat(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// 小数2桁の文字列で出す
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.StringFixed(2))
}

// 文字列・数値どちらの表現も受ける
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f)
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}

func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		m.Decimal = decimal.Zero
		return nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	case float64:
		m.Decimal = decimal.NewFromFloat(v)
		return nil
	case int64:
		m.Decimal = decimal.NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("unsupported money type %T", value)
	}
}

func (m Money) String() string {
	return m.StringFixed(2)
}

// 数量を掛けた金額
func (m Money) MulQty(qty int64) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(qty))}
}

func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}
