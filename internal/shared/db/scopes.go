package db

import (
	"gorm.io/gorm"
)

// ForTenant restricts a query to rows owned by tenantID.
//
// Every repository query on tenant data goes through this scope:
//
//	tx.Model(&models.TicketModel{}).Scopes(db.ForTenant(tenantID)).Where("kind = ?", kind)
func ForTenant(tenantID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// Paginate applies LIMIT/OFFSET for a 1-based page.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 || pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
