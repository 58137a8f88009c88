package model_test

import (
	"encoding/json"
	"testing"

	"loja/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestMoney_ArithmeticKeepsCents(t *testing.T) {
	// 10.00×2 + 5.50 = 25.50（floatの誤差を出さない）
	total := model.MoneyFromFloat(10.00).MulQty(2).Add(model.MoneyFromFloat(5.50))
	assert.Equal(t, "25.50", total.String())

	// 0.1+0.2問題
	sum := model.MoneyFromFloat(0.1).Add(model.MoneyFromFloat(0.2))
	assert.Equal(t, "0.30", sum.String())
}

func TestMoney_JSONIsFixedTwoDecimalsString(t *testing.T) {
	b, err := json.Marshal(model.MoneyFromFloat(5.5))
	assert.NoError(t, err)
	assert.Equal(t, `"5.50"`, string(b))

	var m model.Money
	assert.NoError(t, json.Unmarshal([]byte(`"25.50"`), &m))
	assert.Equal(t, "25.50", m.String())

	//数値表現も受ける
	assert.NoError(t, json.Unmarshal([]byte(`19.9`), &m))
	assert.Equal(t, "19.90", m.String())
}

func TestMoney_ScanFromDB(t *testing.T) {
	var m model.Money
	assert.NoError(t, m.Scan([]byte("10.00")))
	assert.Equal(t, "10.00", m.String())

	assert.NoError(t, m.Scan("5.50"))
	assert.Equal(t, "5.50", m.String())

	assert.NoError(t, m.Scan(nil))
	assert.Equal(t, "0.00", m.String())
}
