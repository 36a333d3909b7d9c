package models

import (
	"testing"

	"orionhotel/constants"

	"github.com/stretchr/testify/assert"
)

func TestBillRecalculate(t *testing.T) {
	b := &Bill{
		RoomCharges: 300,
		Discount:    20,
		ServiceCharges: []ServiceCharge{
			{ServiceType: "Laundry", Amount: 25},
			{ServiceType: "Minibar", Amount: 75},
		},
	}

	b.Recalculate(0.125)

	assert.Equal(t, 100.0, b.ServiceTotal)
	assert.Equal(t, 400.0, b.Subtotal())
	assert.Equal(t, 50.0, b.Taxes)
	assert.Equal(t, 430.0, b.Total)
}

func TestBillRecalculateWithoutCharges(t *testing.T) {
	b := &Bill{RoomCharges: 100}
	b.Recalculate(0.10)

	assert.Equal(t, 0.0, b.ServiceTotal)
	assert.Equal(t, 10.0, b.Taxes)
	assert.Equal(t, 110.0, b.Total)
}

func TestBillApplyPayment(t *testing.T) {
	b := &Bill{Total: 200, Status: constants.BillStatusUnpaid}

	b.ApplyPayment(50, constants.PaymentCash)
	assert.Equal(t, constants.BillStatusPartial, b.Status)
	assert.Equal(t, 150.0, b.Balance())

	b.ApplyPayment(150, constants.PaymentCard)
	assert.Equal(t, constants.BillStatusPaid, b.Status)
	assert.Equal(t, constants.PaymentCard, b.PaymentMethod)
	assert.True(t, b.IsPaid())
	assert.Equal(t, 0.0, b.Balance())
}

func TestBillValidateStatus(t *testing.T) {
	assert.NoError(t, (&Bill{Status: constants.BillStatusPartial}).ValidateStatus())
	assert.Error(t, (&Bill{Status: "REFUNDED"}).ValidateStatus())
}
