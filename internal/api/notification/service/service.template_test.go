// Package notifsvc - Test render template thông báo dạng {{key}}.
package notifsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate_ReplacesKnownKeys(t *testing.T) {
	out := RenderTemplate("Xin chào {{name}}", map[string]interface{}{"name": "Sam"})
	assert.Equal(t, "Xin chào Sam", out)
}

func TestRenderTemplate_MissingKeyBecomesEmpty(t *testing.T) {
	out := RenderTemplate("Xin chào {{name}}, lương kỳ {{month}} đã có", map[string]interface{}{"name": "Sam"})
	assert.Equal(t, "Xin chào Sam, lương kỳ  đã có", out, "key không có trong payload phải thay bằng chuỗi rỗng")
}

func TestRenderTemplate_RepeatedPlaceholder(t *testing.T) {
	out := RenderTemplate("{{x}} và {{x}}", map[string]interface{}{"x": "A"})
	assert.Equal(t, "A và A", out)
}

func TestRenderTemplate_NonStringValues(t *testing.T) {
	out := RenderTemplate("Tháng {{month}}/{{year}}", map[string]interface{}{"month": 8, "year": 2026})
	assert.Equal(t, "Tháng 8/2026", out)
}

func TestRenderTemplate_NoPlaceholders(t *testing.T) {
	out := RenderTemplate("Không có placeholder", map[string]interface{}{"name": "Sam"})
	assert.Equal(t, "Không có placeholder", out)
}

func TestRenderTemplate_NilData(t *testing.T) {
	out := RenderTemplate("Xin chào {{name}}", nil)
	assert.Equal(t, "Xin chào ", out)
}
