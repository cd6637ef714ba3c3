package ads

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adledger/internal/database"
	"adledger/internal/domain/ledger"
)

func setupTestService(t *testing.T) (*Service, *ledger.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:ads_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(ledger.Models()...))

	store := ledger.NewStore(db)
	return NewService(store, zap.NewNop()), store
}

func TestCreditActiveAdPaysReward(t *testing.T) {
	svc, store := setupTestService(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &ledger.User{ID: 1})
	require.NoError(t, err)
	ad, err := svc.CreateAd(ctx, CreateAdRequest{Title: "demo", Reward: 2.0})
	require.NoError(t, err)

	reward, err := svc.Credit(ctx, 1, ad.ID)
	require.NoError(t, err)
	require.Equal(t, "demo", reward.Title)
	require.Equal(t, 2.0, reward.Reward)

	balance, err := store.GetBalance(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, balance)
}

func TestCreditSameAdTwicePaysTwice(t *testing.T) {
	svc, store := setupTestService(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &ledger.User{ID: 1})
	require.NoError(t, err)
	ad, err := svc.CreateAd(ctx, CreateAdRequest{Title: "demo", Reward: 2.0})
	require.NoError(t, err)

	_, err = svc.Credit(ctx, 1, ad.ID)
	require.NoError(t, err)
	_, err = svc.Credit(ctx, 1, ad.ID)
	require.NoError(t, err)

	balance, err := store.GetBalance(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, balance)
}

func TestCreditInactiveAdIsUnavailable(t *testing.T) {
	svc, store := setupTestService(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &ledger.User{ID: 1})
	require.NoError(t, err)
	ad, err := svc.CreateAd(ctx, CreateAdRequest{Title: "demo", Reward: 2.0})
	require.NoError(t, err)
	require.NoError(t, svc.ToggleAd(ctx, ad.ID))

	_, err = svc.Credit(ctx, 1, ad.ID)
	require.ErrorIs(t, err, ErrAdUnavailable)

	balance, err := store.GetBalance(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, balance, "unavailable ad must not change the balance")
}

func TestCreditUnknownAdIsUnavailable(t *testing.T) {
	svc, store := setupTestService(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &ledger.User{ID: 1})
	require.NoError(t, err)

	_, err = svc.Credit(ctx, 1, 555)
	require.ErrorIs(t, err, ErrAdUnavailable)

	balance, err := store.GetBalance(ctx, 1)
	require.NoError(t, err)
	require.Zero(t, balance)
}

func TestCreateAdRejectsNegativeReward(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.CreateAd(context.Background(), CreateAdRequest{Title: "bad", Reward: -1})
	require.ErrorIs(t, err, ErrValidation)
}
