// Package notifsvc - service thông báo: render template, xác định người nhận,
// phát hành thông báo theo quy tắc khi sự kiện nghiệp vụ xảy ra.
package notifsvc

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern khớp placeholder dạng {{key}} với key là chữ, số, gạch dưới.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// RenderTemplate thay các placeholder {{key}} trong template bằng giá trị
// tương ứng trong data. Key không có trong data được thay bằng chuỗi rỗng.
// Thay thế tuần tự theo thứ tự xuất hiện, không hỗ trợ nested hay điều kiện.
func RenderTemplate(template string, data map[string]interface{}) string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	result := template
	for _, m := range matches {
		placeholder, key := m[0], m[1]
		value := ""
		if v, ok := data[key]; ok && v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.Replace(result, placeholder, value, 1)
	}
	return result
}
