package utility

import (
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplyTransformTags áp dụng các tag `transform` của struct input lên dataMap.
// dataMap là kết quả của ToMap(input), key theo bson tag (hoặc tên field lowercase).
// Các transform hỗ trợ:
//   - str_objectid: chuyển string hex 24 ký tự thành primitive.ObjectID
//   - str_objectid_slice: chuyển []string thành []primitive.ObjectID
//
// Field rỗng được bỏ qua (không báo lỗi) để hỗ trợ partial update.
func ApplyTransformTags(input interface{}, dataMap map[string]interface{}) error {
	rv := reflect.ValueOf(input)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		transform := field.Tag.Get("transform")
		if transform == "" {
			continue
		}
		// Tag có thể kèm option phụ, ví dụ "str_objectid,optional"
		transform = strings.Split(transform, ",")[0]

		key := mapKeyForField(field)
		value, exists := dataMap[key]
		if !exists || value == nil {
			continue
		}

		switch transform {
		case "str_objectid":
			strValue, ok := value.(string)
			if !ok || strValue == "" {
				continue
			}
			oid, err := primitive.ObjectIDFromHex(strValue)
			if err != nil {
				return fmt.Errorf("field '%s': giá trị '%s' không phải ObjectID hợp lệ", key, strValue)
			}
			dataMap[key] = oid

		case "str_objectid_slice":
			items, ok := value.(primitive.A)
			if !ok {
				continue
			}
			oids := make([]primitive.ObjectID, 0, len(items))
			for _, item := range items {
				strItem, ok := item.(string)
				if !ok || strItem == "" {
					continue
				}
				oid, err := primitive.ObjectIDFromHex(strItem)
				if err != nil {
					return fmt.Errorf("field '%s': giá trị '%s' không phải ObjectID hợp lệ", key, strItem)
				}
				oids = append(oids, oid)
			}
			dataMap[key] = oids
		}
	}

	return nil
}

// mapKeyForField xác định key của field trong map sau khi round-trip BSON:
// ưu tiên bson tag, nếu không có thì dùng tên field lowercase (mặc định của driver)
func mapKeyForField(field reflect.StructField) string {
	if tag := field.Tag.Get("bson"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field.Name)
}
