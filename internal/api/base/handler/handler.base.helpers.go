package basehdl

// Package basehdl - BaseHandler và các helper xử lý request/response.
// Cung cấp parse body, validate theo struct tag, transform DTO → Model và xử lý filter từ query string.

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "hr_center/internal/api/base/service"
	"hr_center/internal/common"
	"hr_center/internal/global"
	"hr_center/internal/utility"
)

// FilterOptions cấu hình giới hạn filter từ query string cho mỗi handler.
// Dùng để chặn client query vào các field nhạy cảm hoặc dùng operator nguy hiểm ($where, $regex...).
type FilterOptions struct {
	DeniedFields     []string // Các field không cho phép xuất hiện trong filter
	AllowedOperators []string // Danh sách operator MongoDB được phép ($eq, $gt...)
	MaxFields        int      // Số field tối đa trong một filter
}

// DefaultFilterOptions trả về cấu hình filter mặc định dùng chung cho các handler CRUD.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$ne", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	}
}

// BaseHandler chứa các phương thức xử lý request/response cơ bản cho một resource.
// Type Parameters:
//   - T: Kiểu dữ liệu của model
//   - CreateInput: Kiểu dữ liệu DTO khi tạo mới
//   - UpdateInput: Kiểu dữ liệu DTO khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic CRUD
	filterOptions FilterOptions               // Cấu hình giới hạn filter
}

// NewBaseHandler tạo mới một BaseHandler với cấu hình filter mặc định
func NewBaseHandler[T any, CreateInput any, UpdateInput any](service basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService:   service,
		filterOptions: DefaultFilterOptions(),
	}
}

// SetFilterOptions ghi đè cấu hình filter cho handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetFilterOptions(opts FilterOptions) {
	h.filterOptions = opts
}

// ParseRequestBody parse request body JSON vào struct đích
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	return c.Bind().Body(out)
}

// ValidateInput validate struct theo các tag `validate` đã đăng ký trong global.Validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			details := make(map[string]interface{}, len(validationErrors))
			for _, fieldErr := range validationErrors {
				details[fieldErr.Field()] = fmt.Sprintf("không thỏa điều kiện '%s'", fieldErr.Tag())
			}
			return common.NewError(
				common.ErrCodeValidationInput,
				"Dữ liệu đầu vào không hợp lệ",
				common.StatusBadRequest,
				details,
			)
		}
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Lỗi validate dữ liệu: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// TransformCreateInputToModel chuyển DTO tạo mới sang Model.
// Các field có tag `transform:"str_objectid"` được convert từ string hex sang primitive.ObjectID,
// `transform:"str_objectid_slice"` convert mảng string sang mảng ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	return transformInputToModel[T](input)
}

// TransformUpdateInputToModel chuyển DTO cập nhật sang Model, cùng cơ chế với create
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	return transformInputToModel[T](input)
}

// transformInputToModel thực hiện chuyển đổi DTO → Model qua map trung gian:
// marshal DTO thành map (theo json tag), convert các field có tag transform,
// rồi decode map vào model (theo bson tag).
func transformInputToModel[T any](input interface{}) (*T, error) {
	dataMap, err := utility.ToMap(input)
	if err != nil {
		return nil, fmt.Errorf("không thể chuyển input thành map: %w", err)
	}

	// Convert các field string → ObjectID theo tag transform của DTO
	if err := utility.ApplyTransformTags(input, dataMap); err != nil {
		return nil, err
	}

	// Decode map vào model qua BSON round-trip
	raw, err := bson.Marshal(dataMap)
	if err != nil {
		return nil, fmt.Errorf("không thể marshal map: %w", err)
	}

	var model T
	if err := bson.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("không thể decode vào model: %w", err)
	}

	return &model, nil
}

// ProcessFilter đọc và validate filter từ query string.
// Filter là một JSON object, ví dụ: {"department": "FINANCE", "month": {"$gte": 1}}.
// Các giá trị string hex 24 ký tự của field *_id được convert sang ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	filterStr := c.Query("filter", "{}")

	var filter map[string]interface{}
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter phải là một JSON object hợp lệ. Giá trị nhận được: %s", filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	if h.filterOptions.MaxFields > 0 && len(filter) > h.filterOptions.MaxFields {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter không được vượt quá %d field", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		// Chặn field bị cấm
		if utility.Contains(h.filterOptions.DeniedFields, field) {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Không được phép filter theo field '%s'", field),
				common.StatusBadRequest,
				nil,
			)
		}

		// Chặn operator cấp cao nhất không nằm trong danh sách cho phép ($where, $expr...)
		if strings.HasPrefix(field, "$") && !utility.Contains(h.filterOptions.AllowedOperators, field) {
			return nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Operator '%s' không được phép", field),
				common.StatusBadRequest,
				nil,
			)
		}

		// Validate operator lồng trong value: {"field": {"$gt": 1}}
		if valueMap, ok := value.(map[string]interface{}); ok {
			for op := range valueMap {
				if strings.HasPrefix(op, "$") && !utility.Contains(h.filterOptions.AllowedOperators, op) {
					return nil, common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator '%s' không được phép trong filter của field '%s'", op, field),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}

		// Convert string hex sang ObjectID cho _id và các field *Id
		filter[field] = normalizeObjectIDValue(field, value)
	}

	return filter, nil
}

// normalizeObjectIDValue convert giá trị string hex 24 ký tự thành ObjectID
// cho field _id hoặc các field kết thúc bằng Id (employeeId, roleId...)
func normalizeObjectIDValue(field string, value interface{}) interface{} {
	if field != "_id" && !strings.HasSuffix(field, "Id") {
		return value
	}

	if strValue, ok := value.(string); ok && primitive.IsValidObjectID(strValue) {
		return utility.String2ObjectID(strValue)
	}

	// Xử lý operator lồng: {"_id": {"$in": ["...", "..."]}}
	if valueMap, ok := value.(map[string]interface{}); ok {
		for op, opValue := range valueMap {
			if strValue, ok := opValue.(string); ok && primitive.IsValidObjectID(strValue) {
				valueMap[op] = utility.String2ObjectID(strValue)
				continue
			}
			if slice, ok := opValue.([]interface{}); ok {
				for i, item := range slice {
					if strItem, ok := item.(string); ok && primitive.IsValidObjectID(strItem) {
						slice[i] = utility.String2ObjectID(strItem)
					}
				}
			}
		}
	}

	return value
}

// mongoQueryOptions là cấu trúc trung gian để parse options từ query string
type mongoQueryOptions struct {
	Projection map[string]interface{} `json:"projection"`
	Sort       map[string]interface{} `json:"sort"`
	Limit      *int64                 `json:"limit"`
	Skip       *int64                 `json:"skip"`
}

// processMongoOptions đọc options từ query string (JSON) và build options cho driver.
// Ví dụ: {"projection": {"field": 1}, "sort": {"createdAt": -1}, "limit": 10, "skip": 0}
//
// Parameters:
// - c: Fiber context
// - findOne: true nếu cần *options.FindOneOptions, false nếu cần *options.FindOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, findOne bool) (interface{}, error) {
	optionsStr := c.Query("options", "{}")

	var parsed mongoQueryOptions
	if err := json.Unmarshal([]byte(optionsStr), &parsed); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options phải là một JSON object hợp lệ. Giá trị nhận được: %s", optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Chuyển sort map thành bson.D để giữ được hướng sort
	toSortDoc := func(m map[string]interface{}) bson.D {
		sort := bson.D{}
		for k, v := range m {
			sort = append(sort, bson.E{Key: k, Value: v})
		}
		return sort
	}

	if findOne {
		opts := mongoopts.FindOne()
		if len(parsed.Projection) > 0 {
			opts.SetProjection(parsed.Projection)
		}
		if len(parsed.Sort) > 0 {
			opts.SetSort(toSortDoc(parsed.Sort))
		}
		if parsed.Skip != nil {
			opts.SetSkip(*parsed.Skip)
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if len(parsed.Projection) > 0 {
		opts.SetProjection(parsed.Projection)
	}
	if len(parsed.Sort) > 0 {
		opts.SetSort(toSortDoc(parsed.Sort))
	}
	if parsed.Limit != nil {
		opts.SetLimit(*parsed.Limit)
	}
	if parsed.Skip != nil {
		opts.SetSkip(*parsed.Skip)
	}
	return opts, nil
}
