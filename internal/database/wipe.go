package database

import (
	"volunteerhub_backend/internal/appErrors"

	"gorm.io/gorm"
)

// ClearAll удаляет все строки из всех таблиц: дети раньше родителей,
// чтобы не нарушать внешние ключи. Безопасно запускать перед свежей
// генерацией.
func ClearAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := len(migrationOrder) - 1; i >= 0; i-- {
			if err := tx.Unscoped().Where("1 = 1").Delete(migrationOrder[i]).Error; err != nil {
				return appErrors.Wrap(err, appErrors.CodeWipeFailed, "failed to clear table")
			}
		}
		return nil
	})
}
