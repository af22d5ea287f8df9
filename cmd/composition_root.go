package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "logitrack/internal/adapters/in/http"
	"logitrack/internal/adapters/out/kafka"
	"logitrack/internal/adapters/out/postgres"
	"logitrack/internal/core/application/directory"
	"logitrack/internal/core/application/eventhandlers"
	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
	"logitrack/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds every store, handler and subscriber once per process.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	bus        *eventhandlers.EventBus
	offices    *directory.OfficeDirectory
	recorder   *eventhandlers.NotificationRecorder
	publisher  ports.ParcelEventPublisher
	engine     services.TransitionEngine
	generator  *services.TrackingIDGenerator
}

// NewCompositionRoot wires the post-commit subscribers. With KAFKA_BROKERS set,
// status changes are published to Kafka; otherwise they are only logged.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := parcel.PolicyFromString(config.TransitionPolicy)
	if err != nil {
		return nil, err
	}

	bus := eventhandlers.NewEventBus(logger)
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB, bus)

	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		bus:        bus,
		offices:    directory.NewOfficeDirectory(uowFactory.Create().OfficeRepository(), logger),
		engine:     services.NewTransitionEngine(policy),
		generator:  services.NewTrackingIDGenerator(config.TrackingIDMaxAttempts, nil),
	}

	var notificationUoWs eventhandlers.NotificationUoWFactory = FuncNotificationUoWFactory(
		func() eventhandlers.NotificationUoW { return uowFactory.Create() },
	)
	c.recorder = eventhandlers.NewNotificationRecorder(
		notificationUoWs,
		services.NewNotificationDispatcher(),
		config.NotificationRetryBuffer,
		logger,
	)
	bus.Subscribe(parcel.StatusChangedEventName, "notification_recorder", c.recorder)

	if len(config.KafkaBrokers) > 0 {
		producer, producerErr := kafka.NewProducer(config.KafkaBrokers, config.KafkaParcelEventsTopic, logger)
		if producerErr != nil {
			return nil, fmt.Errorf("kafka producer: %w", producerErr)
		}
		c.publisher = producer
		bus.Subscribe(parcel.StatusChangedEventName, "kafka_forwarder", eventhandlers.NewParcelEventForwarder(producer))
	} else {
		bus.Subscribe(parcel.StatusChangedEventName, "event_logger", eventhandlers.NewEventLogger(logger))
	}

	return c, nil
}

// Close releases the Kafka producer, if any.
func (c *CompositionRoot) Close() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

// CreateCreateParcelCommandHandler builds the booking handler. Each attempt runs in its own unit of work.
func (c *CompositionRoot) CreateCreateParcelCommandHandler() *commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateParcelCommandHandler(f, c.offices, c.generator)
	return &h
}

// CreateUpdateParcelStatusCommandHandler builds the transition handler with the configured policy.
func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() *commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateParcelStatusCommandHandler(f, c.offices, c.engine)
	return &h
}

// CreateCreateOfficeCommandHandler builds the office directory write handler.
func (c *CompositionRoot) CreateCreateOfficeCommandHandler() *commands.CreateOfficeCommandHandler {
	var f commands.OfficeUoWFactory = FuncOfficeUoWFactory(func() commands.OfficeUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOfficeCommandHandler(f)
	return &h
}

// CreateTrackParcelQueryHandler builds the public tracking lookup.
func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.parcelReader(), c.offices)
}

// CreateGetParcelQueryHandler builds the single parcel read model.
func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.parcelReader(), c.offices)
}

// CreateGetParcelReceiptQueryHandler builds the bill of supply read model.
func (c *CompositionRoot) CreateGetParcelReceiptQueryHandler() queries.GetParcelReceiptQueryHandler {
	return queries.NewGetParcelReceiptQueryHandler(c.parcelReader(), c.offices)
}

// CreateListParcelsQueryHandler builds the newest-first parcel list.
func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

// CreateGetNotificationsQueryHandler builds the newest-first notification list.
func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

// CreateGetOfficesQueryHandler builds the office directory listing.
func (c *CompositionRoot) CreateGetOfficesQueryHandler() queries.GetOfficesQueryHandler {
	return queries.NewGetOfficesQueryHandler(c.gormDB)
}

// CreateCountParcelsByStatusQueryHandler builds the dashboard status counts.
func (c *CompositionRoot) CreateCountParcelsByStatusQueryHandler() queries.CountParcelsByStatusQueryHandler {
	return queries.NewCountParcelsByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateParcel:         c.CreateCreateParcelCommandHandler(),
		UpdateParcelStatus:   c.CreateUpdateParcelStatusCommandHandler(),
		CreateOffice:         c.CreateCreateOfficeCommandHandler(),
		TrackParcel:          c.CreateTrackParcelQueryHandler(),
		GetParcel:            c.CreateGetParcelQueryHandler(),
		ListParcels:          c.CreateListParcelsQueryHandler(),
		GetParcelReceipt:     c.CreateGetParcelReceiptQueryHandler(),
		GetNotifications:     c.CreateGetNotificationsQueryHandler(),
		GetOffices:           c.CreateGetOfficesQueryHandler(),
		CountParcelsByStatus: c.CreateCountParcelsByStatusQueryHandler(),
	}, c.offices)
}

// CreateJobManager builds the notification retry and status gauge jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.recorder,
		c.CreateCountParcelsByStatusQueryHandler(),
		jobs.Schedules{
			NotificationRetry: c.config.NotificationRetrySchedule,
			StatusGauge:       c.config.StatusGaugeSchedule,
		},
		c.logger,
	)
}

// parcelReader reads parcels outside any transaction.
func (c *CompositionRoot) parcelReader() queries.ParcelReader {
	return c.uowFactory.Create().ParcelRepository()
}

// FuncParcelUoWFactory adapts a function to commands.ParcelUoWFactory.
type FuncParcelUoWFactory func() commands.ParcelUoW

// Create calls f.
func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

// FuncOfficeUoWFactory adapts a function to commands.OfficeUoWFactory.
type FuncOfficeUoWFactory func() commands.OfficeUoW

// Create calls f.
func (f FuncOfficeUoWFactory) Create() commands.OfficeUoW {
	return f()
}

// FuncNotificationUoWFactory adapts a function to eventhandlers.NotificationUoWFactory.
type FuncNotificationUoWFactory func() eventhandlers.NotificationUoW

// Create calls f.
func (f FuncNotificationUoWFactory) Create() eventhandlers.NotificationUoW {
	return f()
}
