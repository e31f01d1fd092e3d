package utility

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// CreateToken tạo JWT token chứa userId, thời điểm tạo và một số ngẫu nhiên
// (đảm bảo mỗi lần login sinh ra token khác nhau).
//
// Returns:
//   - map[string]string: map có key "token" chứa JWT đã ký
//   - error: Lỗi nếu có
func CreateToken(jwtSecret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := jwt.MapClaims{
		"userId":       userID,
		"time":         timeHex,
		"randomNumber": randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("không thể ký JWT token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// VerifyToken parse và xác thực chữ ký của JWT token, trả về claims nếu hợp lệ
func VerifyToken(jwtSecret string, tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token không hợp lệ")
	}
	return claims, nil
}

// HashPassword hash mật khẩu bằng bcrypt (salt nằm trong chính chuỗi hash)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("không thể hash mật khẩu: %w", err)
	}
	return string(hashed), nil
}

// ComparePasswords so sánh mật khẩu với hash bcrypt đã lưu
func ComparePasswords(hashed string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
