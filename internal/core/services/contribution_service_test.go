package services

import (
	"context"
	"testing"
	"time"

	"chamahub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContributionService(repo *stubContributionRepo, profiles *stubProfileRepo, at time.Time) *ContributionService {
	svc := NewContributionService(repo, profiles, 0)
	svc.now = func() time.Time { return at }
	return svc
}

func TestContributionRecord(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("treasurer records a payment", func(t *testing.T) {
		repo := &stubContributionRepo{}
		svc := newTestContributionService(repo, newStubProfileRepo("asha"), clock)

		c, err := svc.Record(ctx, treasurerSession("treasurer-1"), &RecordInput{
			MemberID:      "asha",
			Amount:        "500",
			PaymentMethod: "mpesa",
			WeekNumber:    11,
		})
		require.NoError(t, err)

		assert.Equal(t, "asha", c.MemberID)
		assert.Equal(t, 500.0, c.Amount)
		assert.Equal(t, "paid", c.Status, "status defaults to paid")
		assert.Equal(t, 3, c.Month, "month stamped from the clock")
		assert.Equal(t, 2025, c.Year, "year stamped from the clock")
		assert.Equal(t, clock, c.PaymentDate)
		assert.NotEmpty(t, c.ID)
	})

	t.Run("plain member cannot record", func(t *testing.T) {
		repo := &stubContributionRepo{}
		svc := newTestContributionService(repo, newStubProfileRepo("asha"), clock)

		_, err := svc.Record(ctx, memberSession("asha"), &RecordInput{
			MemberID:      "asha",
			Amount:        "500",
			PaymentMethod: "cash",
			WeekNumber:    1,
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)
		assert.Empty(t, repo.rows)
	})

	t.Run("duplicate submission creates two rows", func(t *testing.T) {
		repo := &stubContributionRepo{}
		svc := newTestContributionService(repo, newStubProfileRepo("asha"), clock)
		input := &RecordInput{
			MemberID:      "asha",
			Amount:        "500",
			PaymentMethod: "cash",
			WeekNumber:    7,
		}

		first, err := svc.Record(ctx, adminSession("admin-1"), input)
		require.NoError(t, err)
		second, err := svc.Record(ctx, adminSession("admin-1"), input)
		require.NoError(t, err)

		// Same dues slot, two distinct ledger rows
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, repo.rows, 2)
	})

	t.Run("validation failures", func(t *testing.T) {
		repo := &stubContributionRepo{}
		svc := newTestContributionService(repo, newStubProfileRepo("asha"), clock)
		sess := adminSession("admin-1")

		base := func() *RecordInput {
			return &RecordInput{MemberID: "asha", Amount: "500", PaymentMethod: "cash", WeekNumber: 1}
		}

		in := base()
		in.Amount = "not-a-number"
		_, err := svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		in = base()
		in.Amount = "-10"
		_, err = svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		in = base()
		in.Amount = "0"
		_, err = svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		in = base()
		in.PaymentMethod = "cheque"
		_, err = svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, domain.ErrInvalidMethod)

		in = base()
		in.WeekNumber = 0
		_, err = svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, domain.ErrInvalidWeek)

		in = base()
		in.Status = "partial"
		_, err = svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)

		in = base()
		in.MemberID = "ghost"
		_, err = svc.Record(ctx, sess, in)
		assert.ErrorIs(t, err, ErrMemberNotFound)

		assert.Empty(t, repo.rows)
	})
}

func TestContributionUpdateDelete(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) (*ContributionService, *stubContributionRepo, string) {
		repo := &stubContributionRepo{}
		svc := newTestContributionService(repo, newStubProfileRepo("asha"), clock)
		c, err := svc.Record(ctx, adminSession("admin-1"), &RecordInput{
			MemberID:      "asha",
			Amount:        "500",
			PaymentMethod: "cash",
			WeekNumber:    2,
		})
		require.NoError(t, err)
		return svc, repo, c.ID
	}

	t.Run("admin edits mutable fields", func(t *testing.T) {
		svc, repo, id := seed(t)

		updated, err := svc.Update(ctx, adminSession("admin-1"), id, &UpdateInput{
			Amount:        "750",
			PaymentMethod: "bank_transfer",
			WeekNumber:    3,
			Status:        "late",
			Notes:         "adjusted",
		})
		require.NoError(t, err)

		assert.Equal(t, 750.0, updated.Amount)
		assert.Equal(t, "bank_transfer", updated.PaymentMethod)
		assert.Equal(t, 3, updated.WeekNumber)
		assert.Equal(t, "late", updated.Status)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "adjusted", *updated.Notes)
		assert.Len(t, repo.rows, 1)
	})

	t.Run("treasurer cannot edit or delete", func(t *testing.T) {
		svc, _, id := seed(t)
		sess := treasurerSession("treasurer-1")

		_, err := svc.Update(ctx, sess, id, &UpdateInput{
			Amount: "750", PaymentMethod: "cash", WeekNumber: 2, Status: "paid",
		})
		assert.ErrorIs(t, err, ErrNotAuthorized)

		assert.ErrorIs(t, svc.Delete(ctx, sess, id), ErrNotAuthorized)
	})

	t.Run("admin deletes", func(t *testing.T) {
		svc, repo, id := seed(t)

		require.NoError(t, svc.Delete(ctx, adminSession("admin-1"), id))
		assert.Empty(t, repo.rows)

		assert.ErrorIs(t, svc.Delete(ctx, adminSession("admin-1"), id), ErrContributionNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := seed(t)

		_, err := svc.Update(ctx, adminSession("admin-1"), "nope", &UpdateInput{
			Amount: "100", PaymentMethod: "cash", WeekNumber: 1, Status: "paid",
		})
		assert.ErrorIs(t, err, ErrContributionNotFound)
	})
}

func TestContributionListScoping(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	repo := &stubContributionRepo{}
	profiles := newStubProfileRepo("asha", "ben")
	svc := newTestContributionService(repo, profiles, clock)
	admin := adminSession("admin-1")

	for i := 0; i < 3; i++ {
		_, err := svc.Record(ctx, admin, &RecordInput{
			MemberID: "asha", Amount: "100", PaymentMethod: "cash", WeekNumber: i + 1,
		})
		require.NoError(t, err)
	}
	_, err := svc.Record(ctx, admin, &RecordInput{
		MemberID: "ben", Amount: "100", PaymentMethod: "mpesa", WeekNumber: 1,
	})
	require.NoError(t, err)

	t.Run("member sees only own rows", func(t *testing.T) {
		rows, err := svc.List(ctx, memberSession("asha"))
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		for _, row := range rows {
			assert.Equal(t, "asha", row.MemberID)
		}
	})

	t.Run("treasurer sees everyone", func(t *testing.T) {
		rows, err := svc.List(ctx, treasurerSession("treasurer-1"))
		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})

	t.Run("list cap applies to the privileged view", func(t *testing.T) {
		capped := newTestContributionService(repo, profiles, clock)
		capped.listLimit = 2

		rows, err := capped.List(ctx, adminSession("admin-1"))
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("get enforces ownership", func(t *testing.T) {
		target := repo.rows[3] // ben's row

		_, err := svc.Get(ctx, memberSession("asha"), target.ID)
		assert.ErrorIs(t, err, ErrNotAuthorized)

		got, err := svc.Get(ctx, memberSession("ben"), target.ID)
		require.NoError(t, err)
		assert.Equal(t, target.ID, got.ID)

		got, err = svc.Get(ctx, treasurerSession("treasurer-1"), target.ID)
		require.NoError(t, err)
		assert.Equal(t, "ben", got.MemberID)
	})
}

func TestContributionListLimitDefault(t *testing.T) {
	svc := NewContributionService(&stubContributionRepo{}, newStubProfileRepo(), -5)
	assert.Equal(t, DefaultListLimit, svc.listLimit)
}
