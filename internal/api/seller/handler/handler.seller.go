// Package sellerhdl xử lý các request HTTP của domain seller.
package sellerhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "hr_center/internal/api/base/handler"
	sellerdto "hr_center/internal/api/seller/dto"
	models "hr_center/internal/api/seller/models"
	sellersvc "hr_center/internal/api/seller/service"
)

// SellerHandler xử lý các request quản lý người bán
type SellerHandler struct {
	*basehdl.BaseHandler[models.Seller, sellerdto.SellerCreateInput, sellerdto.SellerUpdateInput]
	sellerService *sellersvc.SellerService
}

// NewSellerHandler tạo instance mới của SellerHandler
func NewSellerHandler() (*SellerHandler, error) {
	sellerService, err := sellersvc.NewSellerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create seller service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Seller, sellerdto.SellerCreateInput, sellerdto.SellerUpdateInput](sellerService)
	return &SellerHandler{
		BaseHandler:   baseHandler,
		sellerService: sellerService,
	}, nil
}

// HandleSyncNow chạy đồng bộ seller ngay lập tức, không chờ chu kỳ của worker
func (h *SellerHandler) HandleSyncNow(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.sellerService.SyncFromRemote(c.Context())
		h.HandleResponse(c, result, err)
		return nil
	})
}
