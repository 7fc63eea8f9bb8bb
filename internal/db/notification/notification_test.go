package notification

import (
	dn "billremind/internal/core/domain/notification"
	dr "billremind/internal/core/domain/reminder"
	"billremind/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	sink *PgxNotificationSink
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.sink = NewPgxNotificationSink(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.T(), suite.pool)
}

func TestPgxNotificationSink(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func createInput(reminderID int64, billingDate time.Time) dn.CreateInput {
	return dn.CreateInput{
		ReminderID:   dr.ID(reminderID),
		Title:        "Upcoming Payment Reminder - Acme Hosting",
		Description:  "Payment of 149.99 for Acme Hosting is due on March 15, 2024.",
		VendorName:   "Acme Hosting",
		Amount:       149.99,
		BillingDate:  billingDate,
		ReminderTime: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (s *testSuite) TestCreate() {
	// Exercise ---
	id, err := s.sink.Create(
		context.Background(),
		createInput(1, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	)

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.NotZero(id)

	var isSeen bool
	err = s.pool.QueryRow(
		context.Background(),
		"SELECT is_seen FROM billing_notification WHERE id = $1",
		int64(id),
	).Scan(&isSeen)
	assert.Nil(err)
	assert.False(isSeen)
}

func (s *testSuite) TestDuplicateCycleReturnsAlreadyCreated() {
	// Setup ---
	billingDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.sink.Create(context.Background(), createInput(1, billingDate))
	s.Require().Nil(err)

	// Exercise ---
	_, err = s.sink.Create(context.Background(), createInput(1, billingDate))

	// Verify ---
	s.Require().ErrorIs(err, dn.ErrAlreadyCreated)
}

func (s *testSuite) TestDifferentCycleIsNotADuplicate() {
	// Setup ---
	_, err := s.sink.Create(
		context.Background(),
		createInput(1, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	)
	s.Require().Nil(err)

	// Exercise ---
	id, err := s.sink.Create(
		context.Background(),
		createInput(1, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)),
	)

	// Verify ---
	s.Nil(err)
	s.NotZero(id)
}

func (s *testSuite) TestDifferentReminderIsNotADuplicate() {
	// Setup ---
	billingDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.sink.Create(context.Background(), createInput(1, billingDate))
	s.Require().Nil(err)

	// Exercise ---
	id, err := s.sink.Create(context.Background(), createInput(2, billingDate))

	// Verify ---
	s.Nil(err)
	s.NotZero(id)
}
