package referral

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adledger/internal/domain/ledger"
)

type fakeStore struct {
	referralErr error
	balanceErr  error

	referrals []pair
	payouts   []payout
}

type pair struct{ inviter, invited int64 }

type payout struct {
	userID int64
	delta  float64
}

func (f *fakeStore) RecordReferral(_ context.Context, inviterID, invitedID int64) error {
	if f.referralErr != nil {
		return f.referralErr
	}
	f.referrals = append(f.referrals, pair{inviterID, invitedID})
	return nil
}

func (f *fakeStore) AdjustBalance(_ context.Context, id int64, delta float64) error {
	if f.balanceErr != nil {
		return f.balanceErr
	}
	f.payouts = append(f.payouts, payout{id, delta})
	return nil
}

func TestAttributePaysBonusOnce(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, 5, zap.NewNop())

	require.NoError(t, svc.Attribute(context.Background(), 1, 2))

	require.Equal(t, []pair{{1, 2}}, store.referrals)
	require.Equal(t, []payout{{1, 5}}, store.payouts)
}

func TestAttributeAlreadyReferredIsSilent(t *testing.T) {
	store := &fakeStore{referralErr: ledger.ErrReferralExists}
	svc := NewService(store, 5, zap.NewNop())

	require.NoError(t, svc.Attribute(context.Background(), 1, 2))
	require.Empty(t, store.payouts, "no bonus for an already attributed user")
}

func TestAttributeRejectsSelfReferral(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, 5, zap.NewNop())

	err := svc.Attribute(context.Background(), 7, 7)
	require.ErrorIs(t, err, ErrSelfReferral)
	require.Empty(t, store.referrals)
	require.Empty(t, store.payouts)
}

func TestAttributePropagatesStorageError(t *testing.T) {
	boom := errors.New("disk on fire")
	store := &fakeStore{referralErr: boom}
	svc := NewService(store, 5, zap.NewNop())

	err := svc.Attribute(context.Background(), 1, 2)
	require.ErrorIs(t, err, boom)
	require.Empty(t, store.payouts)
}

func TestAttributeBonusFailureSurfaces(t *testing.T) {
	boom := errors.New("disk on fire")
	store := &fakeStore{balanceErr: boom}
	svc := NewService(store, 5, zap.NewNop())

	err := svc.Attribute(context.Background(), 1, 2)
	require.ErrorIs(t, err, boom)
	require.Len(t, store.referrals, 1, "referral row is kept even when the bonus payment fails")
}
