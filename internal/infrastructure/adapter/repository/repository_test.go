package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	clock "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

// setupTestDB opens gorm over sqlmock with the postgres dialect
func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestLedgerRepository_CreditWallet(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

	mock.ExpectQuery(`INSERT INTO wallets`).
		WithArgs("u1", int64(10), testNow).
		WillReturnRows(sqlmock.NewRows([]string{"acorns"}).AddRow(30))

	acorns, err := repo.CreditWallet(context.Background(), "u1", 10)

	require.NoError(t, err)
	assert.Equal(t, int64(30), acorns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_CreditWalletStorageFailure(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

	mock.ExpectQuery(`INSERT INTO wallets`).WillReturnError(errors.New("connection refused"))

	_, err := repo.CreditWallet(context.Background(), "u1", 10)

	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	var storageErr *errs.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "credit_wallet", storageErr.Operation)
}

func TestLedgerRepository_GetWalletMissingIsZero(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "wallets"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "acorns", "updated_at"}))

	acorns, err := repo.GetWallet(context.Background(), "u1")

	require.NoError(t, err)
	assert.Zero(t, acorns)
}

func TestLedgerRepository_AddItem(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

	mock.ExpectQuery(`INSERT INTO inventory_items`).
		WithArgs("u1", entity.ItemFish, int64(1), testNow).
		WillReturnRows(sqlmock.NewRows([]string{"qty"}).AddRow(4))

	qty, err := repo.AddItem(context.Background(), "u1", entity.ItemFish, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(4), qty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Enough stock", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

		mock.ExpectQuery(`UPDATE inventory_items`).
			WithArgs(int64(2), testNow, "u1", entity.ItemFish, int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"qty"}).AddRow(1))

		remaining, err := repo.RemoveItem(ctx, "u1", entity.ItemFish, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(1), remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not enough stock reports what the user has", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

		mock.ExpectQuery(`UPDATE inventory_items`).
			WillReturnRows(sqlmock.NewRows([]string{"qty"}))
		mock.ExpectQuery(`SELECT \* FROM "inventory_items"`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "item", "qty", "updated_at"}).
				AddRow("u1", entity.ItemFish, 1, testNow))

		_, err := repo.RemoveItem(ctx, "u1", entity.ItemFish, 2)

		var stockErr *errs.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, int64(1), stockErr.Have)
		assert.Equal(t, int64(2), stockErr.Requested)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ListInventory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLedgerRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "inventory_items" WHERE user_id = \$1 AND qty > 0 ORDER BY item ASC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "item", "qty", "updated_at"}).
			AddRow("u1", entity.ItemAlgae, 2, testNow).
			AddRow("u1", entity.ItemFish, 5, testNow))

	items, err := repo.ListInventory(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []entity.InventoryItem{
		{Item: entity.ItemAlgae, Qty: 2},
		{Item: entity.ItemFish, Qty: 5},
	}, items)
}

func TestCooldownRepository_TryConsume(t *testing.T) {
	ctx := context.Background()
	cooldown := 3 * time.Second

	t.Run("Elapsed cooldown is consumed", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCooldownRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`INSERT INTO cooldowns .* ON CONFLICT \(user_id, action\) DO UPDATE .* WHERE cooldowns.ready_at <= \$6`).
			WithArgs("u1", "fishing", testNow.Add(cooldown), testNow, testNow, testNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		allowed, readyAt, err := repo.TryConsume(ctx, "u1", "fishing", testNow, cooldown)

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, testNow.Add(cooldown), readyAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Active cooldown reports ready time", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCooldownRepository(db, logger.NewNoopLogger())
		storedReadyAt := testNow.Add(1200 * time.Millisecond)

		mock.ExpectExec(`INSERT INTO cooldowns`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT \* FROM "cooldowns"`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "action", "ready_at", "created_at", "updated_at"}).
				AddRow("u1", "fishing", storedReadyAt, testNow, testNow))

		allowed, readyAt, err := repo.TryConsume(ctx, "u1", "fishing", testNow, cooldown)

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, storedReadyAt, readyAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database failure", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCooldownRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(`INSERT INTO cooldowns`).WillReturnError(errors.New("broken pipe"))

		_, _, err := repo.TryConsume(ctx, "u1", "fishing", testNow, cooldown)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}

func TestDailyCapRepository_Award(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		stored          int64
		requested       int64
		expectedGranted int64
		expectUpdate    bool
	}{
		{"Fresh day", 0, 10, 10, true},
		{"Clamped to remaining", 295, 10, 5, true},
		{"Cap exhausted", 300, 10, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewDailyCapRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO daily_awards .* ON CONFLICT \(user_id, day\) DO NOTHING`).
				WithArgs("u1", "2024-06-01", testNow).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery(`SELECT \* FROM "daily_awards" WHERE .* FOR UPDATE`).
				WillReturnRows(sqlmock.NewRows([]string{"user_id", "day", "awarded", "updated_at"}).
					AddRow("u1", "2024-06-01", tc.stored, testNow))
			if tc.expectUpdate {
				mock.ExpectExec(`UPDATE "daily_awards" SET`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			}
			mock.ExpectCommit()

			granted, awarded, err := repo.Award(ctx, "u1", "2024-06-01", tc.requested, 300)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedGranted, granted)
			assert.Equal(t, tc.stored+tc.expectedGranted, awarded)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDailyCapRepository_AwardRollsBackOnFailure(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewDailyCapRepository(db, clock.NewManualTimeProvider(testNow), logger.NewNoopLogger())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO daily_awards`).WillReturnError(errors.New("could not serialize access"))
	mock.ExpectRollback()

	_, _, err := repo.Award(context.Background(), "u1", "2024-06-01", 10, 300)

	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "handle", "created_at"}).
				AddRow("u1", "guest_abc123", testNow))

		user, err := repo.GetByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, &entity.User{ID: "u1", Handle: "guest_abc123", CreatedAt: testNow}, user)
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "handle", "created_at"}))

		_, err := repo.GetByID(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: "u1", Handle: "guest_abc123", CreatedAt: testNow}

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "users"`).
			WithArgs("u1", "guest_abc123", testNow).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "users"`).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey"`))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Create(ctx, user), errs.ErrDuplicateUser)
	})
}

func TestLedgerEntryRepository_Append(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewLedgerEntryRepository(db, logger.NewNoopLogger())

	entry, err := entity.NewLedgerEntry("u1", entity.SourceFishing, entity.ItemFish, 1, 10, 10, clock.NewManualTimeProvider(testNow))
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "ledger_entries" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.Equal(t, uint64(42), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_ListRecentIsOldestFirst(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChatRepository(db, logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE channel = \$1 ORDER BY id DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "channel", "user_id", "text", "created_at"}).
			AddRow(9, "global", "u2", "second", testNow).
			AddRow(8, "global", "u1", "first", testNow))

	msgs, err := repo.ListRecent(context.Background(), "global", 2)

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
}

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.Equal(t, DuplicateKeyError, classifier.Classify(errors.New("duplicate key value violates unique constraint")))
	assert.Equal(t, LockError, classifier.Classify(errors.New("could not serialize access due to concurrent update")))
	assert.Equal(t, TransientError, classifier.Classify(errors.New("read: connection reset by peer")))
	assert.Equal(t, ConstraintError, classifier.Classify(errors.New(`new row for relation "wallets" violates check constraint "chk_wallets_acorns"`)))
	assert.Equal(t, ErrorType(""), classifier.Classify(errors.New("syntax error")))
	assert.Equal(t, ErrorType(""), classifier.Classify(nil))
	assert.True(t, classifier.IsDuplicateKeyError(errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey"`)))
	assert.True(t, classifier.IsRetryable(errors.New("pq: deadlock detected")))
	assert.True(t, classifier.IsRetryable(errors.New("FATAL: sorry, too many connections for role")))
	assert.False(t, classifier.IsRetryable(errors.New("duplicate key value violates unique constraint")))
	assert.True(t, isContextError(context.DeadlineExceeded))
}
