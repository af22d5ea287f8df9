package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logitrack/internal/adapters/out/postgres"
	"logitrack/internal/adapters/out/postgres/notificationrepo"
	"logitrack/internal/adapters/out/postgres/officerepo"
	"logitrack/internal/adapters/out/postgres/parcelrepo"
	"logitrack/internal/adapters/out/postgres/pgtest"
	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/notification"
	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type ReadModelsIntegrationTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	parcels       *parcelrepo.GormParcelRepository
	notifications *notificationrepo.GormNotificationRepository
	offices       *officerepo.GormOfficeRepository
}

func (suite *ReadModelsIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.parcels = parcelrepo.NewGormParcelRepository(db, noopTracker{})
	suite.notifications = notificationrepo.NewGormNotificationRepository(db)
	suite.offices = officerepo.NewGormOfficeRepository(db)
}

func (suite *ReadModelsIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE notifications, tracking_events, parcels, offices CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ReadModelsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReadModelsIntegrationTestSuite) TestListParcels_NewestFirst() {
	ctx := context.Background()
	first := suite.seedParcel(200001, "off_1", "off_2", bookedAt)
	second := suite.seedParcel(200002, "off_2", "off_3", bookedAt.Add(time.Hour))
	third := suite.seedParcel(200003, "off_3", "off_1", bookedAt.Add(2*time.Hour))

	handler := queries.NewListParcelsQueryHandler(suite.db)
	list, err := handler.Handle(ctx, queries.NewListParcelsQuery("", 0))
	suite.Require().NoError(err)

	suite.Require().Len(list, 3)
	suite.Equal(third.ID(), list[0].ID)
	suite.Equal(second.ID(), list[1].ID)
	suite.Equal(first.ID(), list[2].ID)
	suite.Equal("Alice", list[0].SenderName)
	suite.Equal("BOOKED", list[0].Status)
	suite.Equal("SENDER_PAYS", list[0].PaymentMode)
}

func (suite *ReadModelsIntegrationTestSuite) TestListParcels_FilterByOfficeAndLimit() {
	ctx := context.Background()
	suite.seedParcel(200011, "off_1", "off_2", bookedAt)
	suite.seedParcel(200012, "off_2", "off_3", bookedAt.Add(time.Hour))
	suite.seedParcel(200013, "off_3", "off_1", bookedAt.Add(2*time.Hour))

	handler := queries.NewListParcelsQueryHandler(suite.db)

	list, err := handler.Handle(ctx, queries.NewListParcelsQuery("off_1", 0))
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("TRK-200013", list[0].TrackingID)
	suite.Equal("TRK-200011", list[1].TrackingID)

	list, err = handler.Handle(ctx, queries.NewListParcelsQuery("", 1))
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("TRK-200013", list[0].TrackingID)
}

func (suite *ReadModelsIntegrationTestSuite) TestListParcels_LastUpdatedFollowsHistory() {
	ctx := context.Background()
	p := suite.seedParcel(200021, "off_1", "off_2", bookedAt)

	moved := bookedAt.Add(3 * time.Hour)
	_, err := p.ChangeStatus(parcel.ForwardOnly, parcel.InTransit, "Transit", "", moved)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcels.Update(ctx, p))

	list, err := queries.NewListParcelsQueryHandler(suite.db).Handle(ctx, queries.NewListParcelsQuery("", 10))
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal("IN_TRANSIT", list[0].Status)
	suite.True(moved.Equal(list[0].LastUpdatedAt))
	suite.True(bookedAt.Equal(list[0].CreatedAt))
}

func (suite *ReadModelsIntegrationTestSuite) TestGetNotifications_NewestFirst() {
	ctx := context.Background()
	p := suite.seedParcel(200031, "off_1", "off_2", bookedAt)

	suite.seedNotification(p, notification.Sender, "booked sender", bookedAt)
	suite.seedNotification(p, notification.Receiver, "booked receiver", bookedAt)
	suite.seedNotification(p, notification.Receiver, "in transit", bookedAt.Add(time.Hour))

	other := suite.seedParcel(200032, "off_1", "off_2", bookedAt)
	suite.seedNotification(other, notification.Sender, "other parcel", bookedAt.Add(30*time.Minute))

	handler := queries.NewGetNotificationsQueryHandler(suite.db)

	all, err := handler.Handle(ctx, queries.NewGetNotificationsQuery("", 0))
	suite.Require().NoError(err)
	suite.Require().Len(all, 4)
	suite.Equal("in transit", all[0].Message)
	suite.Equal("other parcel", all[1].Message)
	suite.Equal("booked sender", all[2].Message)
	suite.Equal("Sender", all[2].Recipient)
	suite.Equal("booked receiver", all[3].Message)

	filtered, err := handler.Handle(ctx, queries.NewGetNotificationsQuery("TRK-200032", 0))
	suite.Require().NoError(err)
	suite.Require().Len(filtered, 1)
	suite.Equal(other.ID(), filtered[0].ParcelID)
}

func (suite *ReadModelsIntegrationTestSuite) TestGetOffices_OrderedByID() {
	ctx := context.Background()
	for _, o := range []*office.Office{
		mustOffice(suite.T(), "off_2", "Boston Branch", "Boston", "BOS"),
		mustOffice(suite.T(), "off_1", "Central Hub NY", "New York", "NYC"),
	} {
		suite.Require().NoError(suite.offices.Add(ctx, o))
	}

	list, err := queries.NewGetOfficesQueryHandler(suite.db).Handle(ctx, queries.NewGetOfficesQuery())
	suite.Require().NoError(err)
	suite.Equal([]queries.GetOfficesQueryResponse{
		{ID: "off_1", Name: "Central Hub NY", City: "New York", Code: "NYC"},
		{ID: "off_2", Name: "Boston Branch", City: "Boston", Code: "BOS"},
	}, list)
}

func (suite *ReadModelsIntegrationTestSuite) TestCountParcelsByStatus() {
	ctx := context.Background()
	suite.seedParcel(200041, "off_1", "off_2", bookedAt)
	moving := suite.seedParcel(200042, "off_2", "off_3", bookedAt)
	_, err := moving.ChangeStatus(parcel.ForwardOnly, parcel.InTransit, "Transit", "", bookedAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcels.Update(ctx, moving))

	handler := queries.NewCountParcelsByStatusQueryHandler(suite.db)

	network, err := handler.Handle(ctx, queries.NewCountParcelsByStatusQuery(""))
	suite.Require().NoError(err)
	suite.Equal(int64(2), network.Total)
	suite.Equal(int64(1), network.Count(parcel.Booked))
	suite.Equal(int64(1), network.Count(parcel.InTransit))
	suite.Equal(int64(0), network.Count(parcel.Delivered))
	suite.Len(network.ByStatus, 4)

	office1, err := handler.Handle(ctx, queries.NewCountParcelsByStatusQuery("off_1"))
	suite.Require().NoError(err)
	suite.Equal(int64(1), office1.Total)
	suite.Equal(int64(1), office1.Count(parcel.Booked))
	suite.Equal(int64(0), office1.Count(parcel.InTransit))

	empty, err := handler.Handle(ctx, queries.NewCountParcelsByStatusQuery("off_9"))
	suite.Require().NoError(err)
	suite.Equal(int64(0), empty.Total)
}

func (suite *ReadModelsIntegrationTestSuite) seedParcel(number int, source, destination string, at time.Time) *parcel.Parcel {
	trackingID, err := kernel.NewTrackingID(number)
	suite.Require().NoError(err)
	sender, err := parcel.NewParty("sender", "Alice", "555-0100")
	suite.Require().NoError(err)
	receiver, err := parcel.NewParty("receiver", "Bob", "555-0199")
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      source,
		DestinationOfficeID: destination,
		GoodsType:           "Documents",
		Quantity:            1,
		Price:               15,
		PaymentMode:         parcel.SenderPays,
	}, at, "Central Hub NY")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcels.Add(context.Background(), p))
	return p
}

func (suite *ReadModelsIntegrationTestSuite) seedNotification(
	p *parcel.Parcel,
	recipient notification.Recipient,
	message string,
	at time.Time,
) {
	n, err := notification.NewNotification(kernel.NewUUID(), p.ID(), p.TrackingID(), recipient, "555-0100", message, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notifications.Add(context.Background(), n))
}

func TestReadModelsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelsIntegrationTestSuite))
}
