// Package db defines the storage port shared by repositories.
package db

import "context"

// DB is a generic database handle. Conn returns the driver-specific
// connection (a *gorm.DB for gormdb) that repositories type-assert.
type DB interface {
	Conn() any
	Ping(ctx context.Context) error
	Close() error
}
