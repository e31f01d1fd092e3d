// Package sellersvc - service đồng bộ người bán từ API nghiệp vụ bên ngoài.
package sellersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/api/events"
	models "hr_center/internal/api/seller/models"
	"hr_center/internal/common"
	"hr_center/internal/global"
	"hr_center/internal/logger"
)

// SellerService là cấu trúc chứa các phương thức liên quan đến người bán
type SellerService struct {
	*basesvc.BaseServiceMongoImpl[models.Seller]
	httpClient *http.Client
}

// NewSellerService tạo mới SellerService
func NewSellerService() (*SellerService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Sellers)
	if !exist {
		return nil, fmt.Errorf("failed to get sellers collection: %v", common.ErrNotFound)
	}

	timeout := 15 * time.Second
	if global.ServerConfig != nil && global.ServerConfig.SellerAPI_Timeout > 0 {
		timeout = time.Duration(global.ServerConfig.SellerAPI_Timeout) * time.Second
	}

	return &SellerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Seller](collection),
		httpClient:           &http.Client{Timeout: timeout},
	}, nil
}

// fetchRemoteSellers gọi API bên ngoài và parse danh sách seller thô.
func (s *SellerService) fetchRemoteSellers(ctx context.Context, baseURL string) ([]map[string]interface{}, error) {
	url := baseURL + "/sellers"

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("seller API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var payload []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("seller API response decode failed: %w", err)
	}
	return payload, nil
}

// stringField đọc một field chuỗi từ payload thô, chấp nhận cả giá trị số.
func stringField(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", v)
}

// SyncFromRemote đồng bộ toàn bộ seller từ API bên ngoài: upsert theo externalId,
// giữ nguyên payload gốc và cập nhật lastSyncedAt. Một bản ghi lỗi không chặn
// các bản ghi còn lại. Phát sự kiện hoàn thành/thất bại để notification xử lý.
func (s *SellerService) SyncFromRemote(ctx context.Context) (*models.SyncResult, error) {
	log := logger.GetAppLogger()
	runID := uuid.New().String()

	if global.ServerConfig == nil || global.ServerConfig.SellerAPI_BaseURL == "" {
		return nil, common.NewError(common.ErrCodeUpstream, "Chưa cấu hình SELLER_API_BASE_URL", common.StatusServiceUnavailable, nil)
	}
	baseURL := global.ServerConfig.SellerAPI_BaseURL

	log.WithFields(map[string]interface{}{
		"runId":   runID,
		"baseUrl": baseURL,
	}).Info("🔄 [SELLER] Bắt đầu đồng bộ seller từ API bên ngoài")

	remoteSellers, err := s.fetchRemoteSellers(ctx, baseURL)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"runId": runID,
		}).Error("❌ [SELLER] Lỗi gọi API người bán bên ngoài")

		_ = events.Dispatch(ctx, events.Event{
			Type: events.EventSellerSyncFailed,
			Payload: map[string]interface{}{
				"runId": runID,
				"error": err.Error(),
			},
		})
		return nil, common.NewError(common.ErrCodeUpstream, "Lỗi gọi API người bán bên ngoài", common.StatusBadGateway, err)
	}

	result := &models.SyncResult{RunID: runID, Fetched: len(remoteSellers)}
	now := time.Now().UnixMilli()

	for _, raw := range remoteSellers {
		externalID := stringField(raw, "id")
		if externalID == "" {
			log.WithFields(map[string]interface{}{
				"runId": runID,
			}).Warn("⚠️ [SELLER] Bản ghi không có id, bỏ qua")
			continue
		}

		exists, err := s.DocumentExists(ctx, bson.M{"externalId": externalID})
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"runId":      runID,
				"externalId": externalID,
			}).Error("❌ [SELLER] Lỗi kiểm tra seller tồn tại, bỏ qua bản ghi")
			continue
		}

		seller := models.Seller{
			ExternalID:   externalID,
			Name:         stringField(raw, "name"),
			Email:        stringField(raw, "email"),
			Phone:        stringField(raw, "phone"),
			Status:       stringField(raw, "status"),
			Raw:          raw,
			LastSyncedAt: now,
		}

		if _, err := s.Upsert(ctx, bson.M{"externalId": externalID}, seller); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"runId":      runID,
				"externalId": externalID,
			}).Error("❌ [SELLER] Lỗi upsert seller, bỏ qua bản ghi")
			continue
		}

		if exists {
			result.Updated++
		} else {
			result.Created++
		}
	}

	log.WithFields(map[string]interface{}{
		"runId":   runID,
		"fetched": result.Fetched,
		"created": result.Created,
		"updated": result.Updated,
	}).Info("✅ [SELLER] Đồng bộ seller hoàn tất")

	_ = events.Dispatch(ctx, events.Event{
		Type: events.EventSellerSyncCompleted,
		Payload: map[string]interface{}{
			"runId":   runID,
			"fetched": result.Fetched,
			"created": result.Created,
			"updated": result.Updated,
		},
	})

	return result, nil
}
