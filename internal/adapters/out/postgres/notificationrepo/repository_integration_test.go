package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/adapters/out/postgres/notificationrepo"
	"logitrack/internal/adapters/out/postgres/pgtest"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/notification"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_PersistsRecord() {
	ctx := context.Background()
	n := suite.newNotification()

	suite.Require().NoError(suite.repository.Add(ctx, n))

	var dto notificationrepo.NotificationDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", n.ID().Bytes()).Error)
	suite.Equal("TRK-654321", dto.TrackingID)
	suite.Equal("Receiver", dto.Recipient)
	suite.Equal("Parcel TRK-654321 is now in transit.", dto.Message)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_SameRecordTwice() {
	ctx := context.Background()
	n := suite.newNotification()

	suite.Require().NoError(suite.repository.Add(ctx, n))
	suite.Require().NoError(suite.repository.Add(ctx, n))

	var count int64
	suite.Require().NoError(suite.db.Model(&notificationrepo.NotificationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_RejectsZeroValue() {
	err := suite.repository.Add(context.Background(), &notification.Notification{})
	suite.Require().ErrorIs(err, notification.ErrNotificationIsNotConstructed)
}

func (suite *NotificationRepositoryIntegrationTestSuite) newNotification() *notification.Notification {
	trackingID, err := kernel.NewTrackingID(654321)
	suite.Require().NoError(err)

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		kernel.NewUUID(),
		trackingID,
		notification.Receiver,
		"555-0199",
		"Parcel TRK-654321 is now in transit.",
		time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return n
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
