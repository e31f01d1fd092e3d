// Package salarysvc - Test các quyết định nghiệp vụ thuần túy khi tạo bảng lương.
package salarysvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "hr_center/internal/api/auth/models"
	models "hr_center/internal/api/salary/models"
	"hr_center/internal/common"
)

func TestDuplicatePeriodError_DistinguishesPaidAndProcessing(t *testing.T) {
	var appErr *common.Error

	err := duplicatePeriodError(models.BreakupFile{PaymentStatus: models.PaymentStatusPaid})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusConflict, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "đã được thanh toán")

	err = duplicatePeriodError(models.BreakupFile{PaymentStatus: models.PaymentStatusPending})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusConflict, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "đang được xử lý")
}

func TestPrimaryAssignment_PicksEarliestEffectiveFrom(t *testing.T) {
	first := authmodels.RoleAssignment{ID: primitive.NewObjectID(), EffectiveFrom: 1000}
	second := authmodels.RoleAssignment{ID: primitive.NewObjectID(), EffectiveFrom: 2000}

	assert.Equal(t, first.ID, primaryAssignment([]authmodels.RoleAssignment{second, first}).ID)
	assert.Equal(t, first.ID, primaryAssignment([]authmodels.RoleAssignment{first, second}).ID)
}

func TestPrimaryAssignment_SingleAssignment(t *testing.T) {
	only := authmodels.RoleAssignment{ID: primitive.NewObjectID(), EffectiveFrom: 500}
	assert.Equal(t, only.ID, primaryAssignment([]authmodels.RoleAssignment{only}).ID)
}
