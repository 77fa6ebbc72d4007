package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCharge_Validate(t *testing.T) {
	tests := []struct {
		name    string
		charge  Charge
		wantErr bool
		errMsg  string
	}{
		{
			name: "Open charge with positive amount should pass",
			charge: Charge{
				ID:          uuid.New(),
				UnitID:      uuid.New(),
				Number:      202601,
				Installment: 1,
				Amount:      decimal.RequireFromString("350.00"),
				DueDate:     time.Now(),
				Status:      ChargeStatusOpen,
			},
			wantErr: false,
		},
		{
			name: "Charge with zero amount should fail",
			charge: Charge{
				ID:          uuid.New(),
				UnitID:      uuid.New(),
				Number:      202601,
				Installment: 1,
				Amount:      decimal.Zero,
				Status:      ChargeStatusOpen,
			},
			wantErr: true,
			errMsg:  "charge amount must be positive",
		},
		{
			name: "Charge with zero installment should fail",
			charge: Charge{
				ID:          uuid.New(),
				UnitID:      uuid.New(),
				Number:      202601,
				Installment: 0,
				Amount:      decimal.RequireFromString("350.00"),
				Status:      ChargeStatusOpen,
			},
			wantErr: true,
			errMsg:  "charge installment must be positive",
		},
		{
			name: "Charge without unit should fail",
			charge: Charge{
				ID:          uuid.New(),
				Number:      202601,
				Installment: 1,
				Amount:      decimal.RequireFromString("350.00"),
				Status:      ChargeStatusOpen,
			},
			wantErr: true,
			errMsg:  "charge must reference a unit",
		},
		{
			name: "Charge with unknown status should fail",
			charge: Charge{
				ID:          uuid.New(),
				UnitID:      uuid.New(),
				Number:      202601,
				Installment: 1,
				Amount:      decimal.RequireFromString("350.00"),
				Status:      ChargeStatus("PENDING"),
			},
			wantErr: true,
			errMsg:  "charge status must be OPEN, PAID or CANCELED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.charge.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCharge_Overdue(t *testing.T) {
	now := time.Now()

	charge := Charge{
		ID:          uuid.New(),
		UnitID:      uuid.New(),
		Number:      202601,
		Installment: 1,
		Amount:      decimal.RequireFromString("350.00"),
		DueDate:     now.Add(-24 * time.Hour),
		Status:      ChargeStatusOpen,
	}

	assert.True(t, charge.Overdue(now))

	charge.Status = ChargeStatusPaid
	assert.False(t, charge.Overdue(now), "paid charge is never overdue")

	charge.Status = ChargeStatusOpen
	charge.DueDate = now.Add(24 * time.Hour)
	assert.False(t, charge.Overdue(now))
}
