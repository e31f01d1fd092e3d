package orghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "hr_center/internal/api/base/handler"
	orgdto "hr_center/internal/api/organization/dto"
	models "hr_center/internal/api/organization/models"
	orgsvc "hr_center/internal/api/organization/service"
	"hr_center/internal/common"
	"hr_center/internal/utility"
)

// OrgUnitHandler xử lý các request quản lý đơn vị tổ chức
type OrgUnitHandler struct {
	*basehdl.BaseHandler[models.OrgUnit, orgdto.OrgUnitCreateInput, orgdto.OrgUnitUpdateInput]
	orgUnitService *orgsvc.OrgUnitService
}

// NewOrgUnitHandler tạo instance mới của OrgUnitHandler
func NewOrgUnitHandler() (*OrgUnitHandler, error) {
	orgUnitService, err := orgsvc.NewOrgUnitService()
	if err != nil {
		return nil, fmt.Errorf("failed to create org unit service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.OrgUnit, orgdto.OrgUnitCreateInput, orgdto.OrgUnitUpdateInput](orgUnitService)
	return &OrgUnitHandler{
		BaseHandler:    baseHandler,
		orgUnitService: orgUnitService,
	}, nil
}

// HandleGetTree trả về cây tổ chức. Query param `parentId` (tùy chọn)
// giới hạn cây bắt đầu từ các con trực tiếp của đơn vị đó.
func (h *OrgUnitHandler) HandleGetTree(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		parentID := primitive.NilObjectID
		if parentStr := c.Query("parentId"); parentStr != "" {
			if !primitive.IsValidObjectID(parentStr) {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "parentId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, nil))
				return nil
			}
			parentID = utility.String2ObjectID(parentStr)
		}

		tree, err := h.orgUnitService.GetTree(c.Context(), parentID)
		h.HandleResponse(c, tree, err)
		return nil
	})
}
