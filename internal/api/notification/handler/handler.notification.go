package notifhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "hr_center/internal/api/base/handler"
	notifdto "hr_center/internal/api/notification/dto"
	models "hr_center/internal/api/notification/models"
	notifsvc "hr_center/internal/api/notification/service"
	"hr_center/internal/common"
	"hr_center/internal/utility"
)

// NotificationHandler xử lý các request thông báo của người dùng
type NotificationHandler struct {
	*basehdl.BaseHandler[models.Notification, notifdto.NotificationCreateInput, notifdto.NotificationUpdateInput]
	notificationService *notifsvc.NotificationService
	dispatcher          *notifsvc.NotificationDispatcher
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	dispatcher, err := notifsvc.GetDispatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification dispatcher: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Notification, notifdto.NotificationCreateInput, notifdto.NotificationUpdateInput](notificationService)
	return &NotificationHandler{
		BaseHandler:         baseHandler,
		notificationService: notificationService,
		dispatcher:          dispatcher,
	}, nil
}

// currentUserID đọc employeeId của người đang đăng nhập từ locals.
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return objID, nil
}

// HandleListMine liệt kê thông báo của người đang đăng nhập, mới nhất trước
func (h *NotificationHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		recipientID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.notificationService.ListByRecipient(c.Context(), recipientID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleMarkRead đánh dấu một thông báo của người đang đăng nhập là đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		recipientID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id), common.StatusBadRequest, nil))
			return nil
		}

		notification, err := h.notificationService.MarkRead(c.Context(), utility.String2ObjectID(id), recipientID)
		h.HandleResponse(c, notification, err)
		return nil
	})
}

// HandleMarkAllRead đánh dấu toàn bộ thông báo của người đang đăng nhập là đã đọc
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		recipientID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.notificationService.MarkAllRead(c.Context(), recipientID)
		h.HandleResponse(c, fiber.Map{"marked": count}, err)
		return nil
	})
}

// HandleUnreadCount trả về số thông báo chưa đọc của người đang đăng nhập
func (h *NotificationHandler) HandleUnreadCount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		recipientID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.notificationService.UnreadCount(c.Context(), recipientID)
		h.HandleResponse(c, fiber.Map{"unread": count}, err)
		return nil
	})
}

// HandleDirectSend gửi thông báo trực tiếp tới nhân viên, vai trò hoặc phòng ban
func (h *NotificationHandler) HandleDirectSend(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input notifdto.DirectSendInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Dữ liệu gửi thông báo không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var err error
		switch input.Target {
		case notifdto.SendTargetEmployee:
			if !primitive.IsValidObjectID(input.EmployeeID) {
				err = common.NewError(common.ErrCodeValidationFormat, "employeeId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil)
				break
			}
			err = h.dispatcher.NotifyEmployee(c.Context(), utility.String2ObjectID(input.EmployeeID), input.Title, input.Message)
		case notifdto.SendTargetRole:
			if input.RoleName == "" {
				err = common.NewError(common.ErrCodeValidationInput, "roleName không được để trống", common.StatusBadRequest, nil)
				break
			}
			err = h.dispatcher.NotifyRole(c.Context(), input.RoleName, input.Title, input.Message)
		case notifdto.SendTargetDepartmentRole:
			if input.RoleName == "" || input.Department == "" {
				err = common.NewError(common.ErrCodeValidationInput, "roleName và department không được để trống", common.StatusBadRequest, nil)
				break
			}
			err = h.dispatcher.NotifyDepartmentRole(c.Context(), input.RoleName, input.Department, input.Title, input.Message)
		case notifdto.SendTargetDepartment:
			if input.Department == "" {
				err = common.NewError(common.ErrCodeValidationInput, "department không được để trống", common.StatusBadRequest, nil)
				break
			}
			err = h.dispatcher.NotifyDepartment(c.Context(), input.Department, input.Title, input.Message)
		}

		h.HandleResponse(c, fiber.Map{"sent": err == nil}, err)
		return nil
	})
}
