package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteGateway(t *testing.T) *GormGateway {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gw, err := NewGormGateway(db)
	require.NoError(t, err)
	return gw
}

func TestGormGatewayLoadMissing(t *testing.T) {
	gw := newSQLiteGateway(t)

	data, err := gw.Load(context.Background(), "orders")
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestGormGatewaySaveLoad(t *testing.T) {
	gw := newSQLiteGateway(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"o1"}]`)
	require.NoError(t, gw.Save(ctx, "orders", payload))

	data, err := gw.Load(ctx, "orders")
	require.NoError(t, err)
	require.JSONEq(t, string(payload), string(data))
}

func TestGormGatewayUpsert(t *testing.T) {
	gw := newSQLiteGateway(t)
	ctx := context.Background()

	require.NoError(t, gw.Save(ctx, "orders", []byte(`[]`)))
	require.NoError(t, gw.Save(ctx, "orders", []byte(`[{"id":"o2"}]`)))

	data, err := gw.Load(ctx, "orders")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"o2"}]`, string(data))
}
