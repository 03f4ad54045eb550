package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/reservation/model"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Status
		op      model.Operation
		want    model.Status
		wantErr bool
	}{
		{name: "cancel confirmed", from: model.StatusConfirmed, op: model.OperationCancel, want: model.StatusCanceled},
		{name: "check in confirmed", from: model.StatusConfirmed, op: model.OperationCheckIn, want: model.StatusCheckedIn},
		{name: "check out checked in", from: model.StatusCheckedIn, op: model.OperationCheckOut, want: model.StatusCheckedOut},
		{name: "cancel canceled", from: model.StatusCanceled, op: model.OperationCancel, wantErr: true},
		{name: "cancel checked in", from: model.StatusCheckedIn, op: model.OperationCancel, wantErr: true},
		{name: "check out confirmed", from: model.StatusConfirmed, op: model.OperationCheckOut, wantErr: true},
		{name: "check in checked out", from: model.StatusCheckedOut, op: model.OperationCheckIn, wantErr: true},
		{name: "unknown operation", from: model.StatusConfirmed, op: model.Operation("extend"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Transition(tt.from, tt.op)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidTransition)
				assert.Equal(t, tt.from, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, model.StatusConfirmed.IsActive())
	assert.True(t, model.StatusCheckedIn.IsActive())
	assert.False(t, model.StatusCheckedOut.IsActive())
	assert.False(t, model.StatusCanceled.IsActive())

	assert.True(t, model.StatusCanceled.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
}
