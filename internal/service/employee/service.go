package employee

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/storage"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileStorage  storage.FileStorage
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileStorage:  fileStorage,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Designation: strings.TrimSpace(req.Designation),
		DailyWage:   req.DailyWage,
		PhoneNumber: req.PhoneNumber,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, search string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employee.Filter(employees, search) {
		result = append(result, mapToResponse(emp))
	}

	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Designation != nil {
		emp.Designation = strings.TrimSpace(*req.Designation)
	}
	if req.DailyWage != nil {
		emp.DailyWage = *req.DailyWage
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) UploadPhoto(ctx context.Context, id string, file io.Reader, filename string, contentType string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	path := fmt.Sprintf("employees/%s%s", emp.ID, filepath.Ext(filename))
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to store photo: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve photo URL: %w", err)
	}

	emp.PhotoURL = &url
	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(updated), nil
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Designation: emp.Designation,
		DailyWage:   emp.DailyWage,
		PhoneNumber: emp.PhoneNumber,
		PhotoURL:    emp.PhotoURL,
	}
}
