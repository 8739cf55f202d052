package employee

import (
	"context"
	"sort"
	"testing"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func TestCreateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:        "  Ramesh Kumar  ",
		Designation: "Mason",
		DailyWage:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ramesh Kumar", resp.Name, "name should be trimmed")
	assert.True(t, resp.DailyWage.Equal(decimal.NewFromInt(500)))
}

func TestCreateEmployee_Invalid(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:        "",
		Designation: "Mason",
		DailyWage:   decimal.NewFromInt(-5),
	})
	assert.Error(t, err)
}

func TestListEmployees_Search(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	seed := []employee.CreateEmployeeRequest{
		{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(500)},
		{Name: "Suresh Singh", Designation: "Carpenter", DailyWage: decimal.NewFromInt(600)},
		{Name: "Anita Devi", Designation: "Supervisor", DailyWage: decimal.NewFromInt(800)},
	}
	for _, req := range seed {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	masons, err := svc.List(context.Background(), "mason")
	require.NoError(t, err)
	require.Len(t, masons, 1)
	assert.Equal(t, "Ramesh Kumar", masons[0].Name)

	none, err := svc.List(context.Background(), "plumber")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:        "Ramesh Kumar",
		Designation: "Mason",
		DailyWage:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	newWage := decimal.NewFromInt(550)
	updated, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:        created.ID,
		DailyWage: &newWage,
	})
	require.NoError(t, err)

	assert.True(t, updated.DailyWage.Equal(newWage))
	assert.Equal(t, "Ramesh Kumar", updated.Name, "unset fields stay untouched")
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), nil)

	name := "Nobody"
	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:   "missing",
		Name: &name,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:        "Ramesh Kumar",
		Designation: "Mason",
		DailyWage:   decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
