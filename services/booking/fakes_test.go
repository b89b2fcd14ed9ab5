package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/registry"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory doubles for the Mongo repositories, shared by the tests in this
// package.

type fakeBookingRepo struct {
	mu         sync.Mutex
	items      map[string]*models.Booking
	approveErr error
	vehicles   *fakeVehicleRepo
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{items: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[b.ID]; exists {
		return errors.New("duplicate booking identifier")
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	clone := *b
	r.items[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.items {
		if !b.IsArchived {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetArchived() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.items {
		if b.IsArchived {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetActiveByEmployee(employeeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.items {
		if b.IsArchived || b.Status == models.BookingCompleted {
			continue
		}
		for _, id := range b.EmployeeAssigned {
			if id == employeeID {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetPendingVehicleChanges() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.items {
		if b.VehicleChangeRequest != nil && b.VehicleChangeRequest.Status == models.ChangeRequestPending {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	for key, value := range updateDoc {
		switch key {
		case "status":
			b.Status = value.(models.BookingStatus)
		case "clientName":
			b.ClientName = value.(string)
		case "pickupLocation":
			b.PickupLocation = value.(string)
		case "deliveryLocation":
			b.DeliveryLocation = value.(string)
		case "deliveryDate":
			b.DeliveryDate = value.(time.Time)
		case "remarks":
			b.Remarks = value.(string)
		case "isArchived":
			b.IsArchived = value.(bool)
		case "driverLocation":
			if value == nil {
				b.DriverLocation = nil
			} else {
				loc := value.(models.DriverLocation)
				b.DriverLocation = &loc
			}
		case "proofOfDelivery":
			b.ProofOfDelivery = value.(*models.TripDocument)
		case "vehicleChangeRequest":
			req := value.(models.VehicleChangeRequest)
			b.VehicleChangeRequest = &req
		default:
			return fmt.Errorf("fake repo: unhandled $set key %q", key)
		}
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) PushDocument(id string, pushDoc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	for key, value := range pushDoc {
		switch key {
		case "statusAudit":
			b.StatusAudit = append(b.StatusAudit, value.(models.StatusAuditEntry))
		case "vehicleHistory":
			b.VehicleHistory = append(b.VehicleHistory, value.(models.VehicleHistoryEntry))
		default:
			return fmt.Errorf("fake repo: unhandled $push key %q", key)
		}
	}
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeBookingRepo) ApproveVehicleChange(ctx context.Context, bookingID string, outgoing, incoming models.VehicleHistoryEntry) error {
	if r.approveErr != nil {
		return r.approveErr
	}
	r.mu.Lock()
	b, ok := r.items[bookingID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("booking %s not found", bookingID)
	}
	now := time.Now()
	b.VehicleHistory = append(b.VehicleHistory, outgoing, incoming)
	b.VehicleID = incoming.VehicleID
	b.VehicleType = incoming.VehicleType
	b.PlateNumber = incoming.PlateNumber
	b.VehicleChangeRequest.Status = models.ChangeRequestApproved
	b.VehicleChangeRequest.ApprovedAt = &now
	b.UpdatedAt = now
	r.mu.Unlock()

	if r.vehicles != nil {
		if outgoing.VehicleID != "" {
			_, _ = r.vehicles.SetStatus(outgoing.VehicleID, models.ResourceNotAvailable)
		}
		_, _ = r.vehicles.SetStatus(incoming.VehicleID, models.ResourceOnTrip)
	}
	return nil
}

type fakeVehicleRepo struct {
	mu    sync.Mutex
	items map[string]*models.Vehicle
}

func newFakeVehicleRepo(vehicles ...*models.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{items: make(map[string]*models.Vehicle)}
	for _, v := range vehicles {
		clone := *v
		r.items[v.VehicleID] = &clone
	}
	return r
}

func (r *fakeVehicleRepo) Create(v *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[v.VehicleID]; exists {
		return errors.New("duplicate vehicle identifier")
	}
	clone := *v
	r.items[v.VehicleID] = &clone
	return nil
}

func (r *fakeVehicleRepo) GetByVehicleID(vehicleID string) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[vehicleID]
	if !ok {
		return nil, nil
	}
	clone := *v
	return &clone, nil
}

func (r *fakeVehicleRepo) GetAll() ([]models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Vehicle
	for _, v := range r.items {
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) UpdateSetDocument(vehicleID string, updateDoc bson.M) error {
	return nil
}

func (r *fakeVehicleRepo) Delete(vehicleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, vehicleID)
	return nil
}

func (r *fakeVehicleRepo) SetStatus(vehicleID string, status models.ResourceStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[vehicleID]
	if !ok {
		return 0, nil
	}
	v.Status = status
	return 1, nil
}

func (r *fakeVehicleRepo) ExistsPlateOrRegistration(plateNumber, registrationNumber, excludeVehicleID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.VehicleID == excludeVehicleID {
			continue
		}
		if (plateNumber != "" && v.PlateNumber == plateNumber) ||
			(registrationNumber != "" && v.RegistrationNumber == registrationNumber) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVehicleRepo) statusOf(vehicleID string) models.ResourceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.items[vehicleID]; ok {
		return v.Status
	}
	return ""
}

type fakeEmployeeRepo struct {
	mu    sync.Mutex
	items map[string]*models.Employee
}

func newFakeEmployeeRepo(employees ...*models.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{items: make(map[string]*models.Employee)}
	for _, e := range employees {
		clone := *e
		r.items[e.EmployeeID] = &clone
	}
	return r
}

func (r *fakeEmployeeRepo) Create(e *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[e.EmployeeID]; exists {
		return errors.New("duplicate employee identifier")
	}
	clone := *e
	r.items[e.EmployeeID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[employeeID]
	if !ok {
		return nil, nil
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetAll() ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Employee
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeIDs(employeeIDs []string) ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Employee
	for _, id := range employeeIDs {
		if e, ok := r.items[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateSetDocument(employeeID string, updateDoc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[employeeID]
	if !ok {
		return fmt.Errorf("employee %s not found", employeeID)
	}
	if token, ok := updateDoc["fcmToken"]; ok {
		e.FCMToken = token.(string)
	}
	if hash, ok := updateDoc["tokenHash"]; ok {
		e.TokenHash = hash.(string)
	}
	return nil
}

func (r *fakeEmployeeRepo) Delete(employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, employeeID)
	return nil
}

func (r *fakeEmployeeRepo) SetStatusMany(employeeIDs []string, status models.ResourceStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched int64
	for _, id := range employeeIDs {
		if e, ok := r.items[id]; ok {
			e.Status = status
			matched++
		}
	}
	return matched, nil
}

func (r *fakeEmployeeRepo) statusOf(employeeID string) models.ResourceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.items[employeeID]; ok {
		return e.Status
	}
	return ""
}

type fakeCounterRepo struct {
	mu       sync.Mutex
	counters map[string]int64
	failNext bool
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[string]int64)}
}

func (r *fakeCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		return 0, errors.New("counter unavailable")
	}
	r.counters[name]++
	return r.counters[name], nil
}

type fakeStorage struct {
	mu      sync.Mutex
	uploads []string
}

func (s *fakeStorage) UploadDataURI(ctx context.Context, dataURI, destFolder string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	publicID := fmt.Sprintf("%s/doc-%d", destFolder, len(s.uploads)+1)
	s.uploads = append(s.uploads, publicID)
	return publicID, nil
}

func (s *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	return s.UploadDataURI(ctx, localFilePath, destFolder)
}

func (s *fakeStorage) DeleteFile(ctx context.Context, publicID string) error { return nil }

func (s *fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

type testEnv struct {
	svc       *DefaultBookingService
	bookings  *fakeBookingRepo
	vehicles  *fakeVehicleRepo
	employees *fakeEmployeeRepo
	counters  *fakeCounterRepo
}

func newTestEnv(vehicles []*models.Vehicle, employees []*models.Employee) *testEnv {
	bookings := newFakeBookingRepo()
	vehicleRepo := newFakeVehicleRepo(vehicles...)
	employeeRepo := newFakeEmployeeRepo(employees...)
	counters := newFakeCounterRepo()
	bookings.vehicles = vehicleRepo

	svc := &DefaultBookingService{
		Repo:         bookings,
		VehicleRepo:  vehicleRepo,
		EmployeeRepo: employeeRepo,
		Counters:     counters,
		Registry: &registry.DefaultRegistryService{
			VehicleRepo:  vehicleRepo,
			EmployeeRepo: employeeRepo,
		},
		Storage: &fakeStorage{},
	}
	return &testEnv{svc: svc, bookings: bookings, vehicles: vehicleRepo, employees: employeeRepo, counters: counters}
}

func availableVehicle(id, plate string) *models.Vehicle {
	return &models.Vehicle{
		VehicleID:          id,
		VehicleType:        "6-Wheeler",
		Brand:              "Isuzu",
		PlateNumber:        plate,
		RegistrationNumber: "REG-" + plate,
		Status:             models.ResourceAvailable,
	}
}

func availableDriver(id string) *models.Employee {
	return &models.Employee{
		EmployeeID: id,
		FirstName:  "Juan",
		LastName:   "Dela Cruz",
		Role:       models.RoleDriver,
		Status:     models.ResourceAvailable,
	}
}

const testProofData = "data:image/png;base64,aGVsbG8tcHJvb2YtYnl0ZXM="
