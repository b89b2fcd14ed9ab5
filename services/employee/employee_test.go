package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	items map[string]*models.Employee
}

func (r *fakeEmployeeRepo) Create(e *models.Employee) error {
	clone := *e
	r.items[e.EmployeeID] = &clone
	return nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	e, ok := r.items[employeeID]
	if !ok {
		return nil, nil
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEmployeeRepo) GetAll() ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeIDs(employeeIDs []string) ([]models.Employee, error) {
	var out []models.Employee
	for _, id := range employeeIDs {
		if e, ok := r.items[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) UpdateSetDocument(employeeID string, updateDoc bson.M) error {
	e, ok := r.items[employeeID]
	if !ok {
		return errors.New("employee not found")
	}
	if name, ok := updateDoc["firstName"]; ok {
		e.FirstName = name.(string)
	}
	if role, ok := updateDoc["role"]; ok {
		e.Role = role.(models.EmployeeRole)
	}
	return nil
}

func (r *fakeEmployeeRepo) Delete(employeeID string) error {
	delete(r.items, employeeID)
	return nil
}

func (r *fakeEmployeeRepo) SetStatusMany(employeeIDs []string, status models.ResourceStatus) (int64, error) {
	var matched int64
	for _, id := range employeeIDs {
		if e, ok := r.items[id]; ok {
			e.Status = status
			matched++
		}
	}
	return matched, nil
}

type fakeCounterRepo struct{ seq int64 }

func (r *fakeCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	r.seq++
	return r.seq, nil
}

func newTestService(employees ...*models.Employee) (*DefaultEmployeeService, *fakeEmployeeRepo) {
	repo := &fakeEmployeeRepo{items: make(map[string]*models.Employee)}
	for _, e := range employees {
		clone := *e
		repo.items[e.EmployeeID] = &clone
	}
	return &DefaultEmployeeService{Repo: repo, Counters: &fakeCounterRepo{}}, repo
}

func TestCreateEmployee(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	emp, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Role:      models.RoleDriver,
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("CreateEmployee: %v", err)
	}
	if emp.EmployeeID != "EMP001" {
		t.Errorf("employee id = %s, want EMP001", emp.EmployeeID)
	}
	if emp.Status != models.ResourceAvailable {
		t.Errorf("status = %s, want %s", emp.Status, models.ResourceAvailable)
	}

	stored := repo.items["EMP001"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Error("stored password hash does not match the password")
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Role:      "Dispatcher",
		Password:  "s3cret-pass",
	})
	var v *booking.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("invalid role err = %v, want ValidationError", err)
	}

	_, err = svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Role:      models.RoleHelper,
		Password:  "short",
	})
	if !errors.As(err, &v) {
		t.Fatalf("short password err = %v, want ValidationError", err)
	}
}

func TestSetAvailabilityGuards(t *testing.T) {
	svc, repo := newTestService(&models.Employee{
		EmployeeID: "EMP001",
		Role:       models.RoleDriver,
		Status:     models.ResourceOnTrip,
	})

	_, err := svc.SetAvailability("EMP001", models.ResourceNotAvailable)
	var pre *booking.PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}

	repo.items["EMP001"].Status = models.ResourceAvailable
	updated, err := svc.SetAvailability("EMP001", models.ResourceNotAvailable)
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if updated.Status != models.ResourceNotAvailable {
		t.Fatalf("status = %s", updated.Status)
	}
}

func TestDeleteEmployeeRefusedWhileOnTrip(t *testing.T) {
	svc, repo := newTestService(&models.Employee{
		EmployeeID: "EMP001",
		Role:       models.RoleDriver,
		Status:     models.ResourceOnTrip,
	})

	err := svc.DeleteEmployee("EMP001")
	var pre *booking.PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}

	repo.items["EMP001"].Status = models.ResourceAvailable
	if err := svc.DeleteEmployee("EMP001"); err != nil {
		t.Fatalf("DeleteEmployee: %v", err)
	}
}
