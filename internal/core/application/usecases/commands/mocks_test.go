package commands_test

import (
	"context"
	"time"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingID(ctx context.Context, id kernel.TrackingID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) ExistsByTrackingID(ctx context.Context, id kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockOfficeRepository struct{ mock.Mock }

func (m *MockOfficeRepository) Add(ctx context.Context, o *office.Office) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfficeRepository) Get(ctx context.Context, id string) (*office.Office, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*office.Office)
	return o, args.Error(1)
}

func (m *MockOfficeRepository) GetAll(ctx context.Context) ([]*office.Office, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*office.Office)
	return o, args.Error(1)
}

type MockOfficeUoW struct{ mock.Mock }

func (m *MockOfficeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOfficeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOfficeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOfficeUoW) OfficeRepository() ports.OfficeRepository {
	args := m.Called()
	return args.Get(0).(ports.OfficeRepository)
}

type MockOfficeUoWFactory struct{ mock.Mock }

func (m *MockOfficeUoWFactory) Create() commands.OfficeUoW {
	args := m.Called()
	return args.Get(0).(commands.OfficeUoW)
}

type MockOfficeNames struct{ mock.Mock }

func (m *MockOfficeNames) ResolveName(ctx context.Context, officeID string) (string, error) {
	args := m.Called(ctx, officeID)
	return args.String(0), args.Error(1)
}

// trackingIDs returns a draw function yielding numbers in order, repeating the last.
func trackingIDs(numbers ...int) func() int {
	i := 0
	return func() int {
		n := numbers[min(i, len(numbers)-1)]
		i++
		return n
	}
}

func mustTrackingID(n int) kernel.TrackingID {
	id, err := kernel.NewTrackingID(n)
	if err != nil {
		panic(err)
	}
	return id
}

func testShipment() parcel.Shipment {
	sender, _ := parcel.NewParty("sender", "Alice", "555-0100")
	receiver, _ := parcel.NewParty("receiver", "Bob", "555-0199")
	return parcel.Shipment{
		Sender:              sender,
		Receiver:            receiver,
		SourceOfficeID:      "off_1",
		DestinationOfficeID: "off_2",
		GoodsType:           "Electronics",
		Quantity:            1,
		Price:               250,
		PaymentMode:         parcel.CollectOnDelivery,
	}
}

func bookedParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), mustTrackingID(777001), testShipment(),
		fixedNow.Add(-24*time.Hour), "Central Hub NY")
	if err != nil {
		panic(err)
	}
	p.ClearDomainEvents()
	return p
}
