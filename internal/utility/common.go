package utility

import (
	"hr_center/internal/logger"
)

// GoProtect chạy một function trong goroutine với recover để không làm crash server
func GoProtect(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Goroutine panic recovered")
			}
		}()
		f()
	}()
}
