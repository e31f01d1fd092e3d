// Package notifhdl xử lý các request HTTP của domain notification.
package notifhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "hr_center/internal/api/base/handler"
	notifdto "hr_center/internal/api/notification/dto"
	models "hr_center/internal/api/notification/models"
	notifsvc "hr_center/internal/api/notification/service"
	"hr_center/internal/common"
	"hr_center/internal/utility"
)

// NotificationRuleHandler xử lý các request quản lý quy tắc thông báo
type NotificationRuleHandler struct {
	*basehdl.BaseHandler[models.NotificationRule, notifdto.NotificationRuleCreateInput, notifdto.NotificationRuleUpdateInput]
	dispatcher *notifsvc.NotificationDispatcher
}

// NewNotificationRuleHandler tạo instance mới của NotificationRuleHandler
func NewNotificationRuleHandler() (*NotificationRuleHandler, error) {
	ruleService, err := notifsvc.NewNotificationRuleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification rule service: %v", err)
	}
	dispatcher, err := notifsvc.GetDispatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification dispatcher: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.NotificationRule, notifdto.NotificationRuleCreateInput, notifdto.NotificationRuleUpdateInput](ruleService)
	return &NotificationRuleHandler{
		BaseHandler: baseHandler,
		dispatcher:  dispatcher,
	}, nil
}

// HandleTriggerRule phát hành thủ công một quy tắc với payload tùy ý (kiểm thử quy tắc)
func (h *NotificationRuleHandler) HandleTriggerRule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id), common.StatusBadRequest, nil))
			return nil
		}

		var input notifdto.TriggerRuleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Payload không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if input.Payload == nil {
			input.Payload = map[string]interface{}{}
		}

		err := h.dispatcher.TriggerRule(c.Context(), utility.String2ObjectID(id), input.Payload)
		h.HandleResponse(c, fiber.Map{"triggered": err == nil}, err)
		return nil
	})
}
