package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/adapters/out/postgres/parcelrepo"
	"logitrack/internal/adapters/out/postgres/pgtest"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.TrackingEventDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tracking_events, parcels CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_PersistsParcelWithBookingEntry() {
	ctx := context.Background()
	p := suite.newParcel(500001)

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.TrackingID(), loaded.TrackingID())
	suite.Equal(parcel.Booked, loaded.Status())
	suite.Equal("Alice", loaded.Sender().Name())
	suite.Equal("555-0199", loaded.Receiver().Phone())
	suite.Equal(parcel.SenderPays, loaded.PaymentMode())
	suite.Require().Len(loaded.History(), 1)
	suite.Equal(parcel.BookingNote, loaded.History()[0].Note())
	suite.Equal("Central Hub NY", loaded.History()[0].Location())
	suite.Empty(loaded.DomainEvents())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingID() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newParcel(500002)))

	err := suite.repository.Add(ctx, suite.newParcel(500002))

	suite.Require().ErrorIs(err, parcel.ErrDuplicateTrackingID)
	suite.assertParcelCount(1)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryInOrder() {
	ctx := context.Background()
	p := suite.newParcel(500003)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	at := p.CreatedAt()
	for _, target := range []parcel.Status{parcel.InTransit, parcel.Arrived, parcel.Delivered} {
		loaded, err := suite.repository.Get(ctx, p.ID())
		suite.Require().NoError(err)
		at = at.Add(time.Hour)
		_, err = loaded.ChangeStatus(parcel.ForwardOnly, target, "Transit", "step "+target.String(), at)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Update(ctx, loaded))
	}

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Delivered, loaded.Status())

	history := loaded.History()
	suite.Require().Len(history, 4)
	expected := []parcel.Status{parcel.Booked, parcel.InTransit, parcel.Arrived, parcel.Delivered}
	for i, e := range history {
		suite.Equal(expected[i], e.Status())
	}
	suite.Equal("step ARRIVED", history[2].Note())
	suite.assertEventCount(p.ID(), 4)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_KeepsStoredEntries() {
	ctx := context.Background()
	p := suite.newParcel(500004)
	suite.Require().NoError(suite.repository.Add(ctx, p))
	suite.Require().NoError(suite.db.Exec(
		"UPDATE tracking_events SET note = 'stored' WHERE parcel_id = ?", p.ID().Bytes(),
	).Error)

	_, err := p.ChangeStatus(parcel.ForwardOnly, parcel.InTransit, "Transit", "", p.CreatedAt().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("stored", loaded.History()[0].Note())
	suite.Len(loaded.History(), 2)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_UnknownParcel() {
	err := suite.repository.Update(context.Background(), suite.newParcel(500005))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	p := suite.newParcel(500006)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		repo := parcelrepo.NewGormParcelRepository(tx, suite.tracker)
		locked, err := repo.GetForUpdate(ctx, p.ID())
		if err != nil {
			return err
		}
		suite.Equal(p.TrackingID(), locked.TrackingID())
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingID() {
	ctx := context.Background()
	p := suite.newParcel(500007)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Run("exact match", func() {
		loaded, err := suite.repository.GetByTrackingID(ctx, p.TrackingID())
		suite.Require().NoError(err)
		suite.True(loaded.IsEqual(p))
	})

	suite.Run("miss is not found", func() {
		other, err := kernel.NewTrackingID(500008)
		suite.Require().NoError(err)
		_, err = suite.repository.GetByTrackingID(ctx, other)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestExistsByTrackingID() {
	ctx := context.Background()
	p := suite.newParcel(500009)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	exists, err := suite.repository.ExistsByTrackingID(ctx, p.TrackingID())
	suite.Require().NoError(err)
	suite.True(exists)

	other, err := kernel.NewTrackingID(500010)
	suite.Require().NoError(err)
	exists, err = suite.repository.ExistsByTrackingID(ctx, other)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel(number int) *parcel.Parcel {
	trackingID, err := kernel.NewTrackingID(number)
	suite.Require().NoError(err)
	sender, err := parcel.NewParty("sender", "Alice", "555-0100")
	suite.Require().NoError(err)
	receiver, err := parcel.NewParty("receiver", "Bob", "555-0199")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      "off_1",
		DestinationOfficeID: "off_2",
		GoodsType:           "Documents",
		Quantity:            2,
		Price:               12.5,
		PaymentMode:         parcel.SenderPays,
	}, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), "Central Hub NY")
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertEventCount(id kernel.UUID, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.TrackingEventDTO{}).
		Where("parcel_id = ?", id.Bytes()).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
