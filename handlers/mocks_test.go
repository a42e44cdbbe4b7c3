package handlers

import (
	"heartrisk/models"
)

// MockUserRepo implements repository.UserRepository for testing
type MockUserRepo struct {
	CreateUserFunc     func(user *models.AppUser) error
	GetUserByEmailFunc func(email string) (*models.AppUser, error)
	GetUserByIDFunc    func(id string) (*models.AppUser, error)
}

func (m *MockUserRepo) CreateUser(user *models.AppUser) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(user)
	}
	return nil
}

func (m *MockUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockUserRepo) GetUserByID(id string) (*models.AppUser, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return nil, nil
}

// MockPredictionRepo implements repository.PredictionRepository for testing
type MockPredictionRepo struct {
	CreateFunc     func(record *models.PredictionRecord) error
	ListByUserFunc func(userID string) ([]*models.PredictionRecord, error)
	GetOneFunc     func(userID, recordID string) (*models.PredictionRecord, error)
	DeleteOneFunc  func(userID, recordID string) error
	DeleteAllFunc  func(userID string) (int64, error)
}

func (m *MockPredictionRepo) Create(record *models.PredictionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(record)
	}
	return nil
}

func (m *MockPredictionRepo) ListByUser(userID string) ([]*models.PredictionRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(userID)
	}
	return nil, nil
}

func (m *MockPredictionRepo) GetOne(userID, recordID string) (*models.PredictionRecord, error) {
	if m.GetOneFunc != nil {
		return m.GetOneFunc(userID, recordID)
	}
	return nil, nil
}

func (m *MockPredictionRepo) DeleteOne(userID, recordID string) error {
	if m.DeleteOneFunc != nil {
		return m.DeleteOneFunc(userID, recordID)
	}
	return nil
}

func (m *MockPredictionRepo) DeleteAll(userID string) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(userID)
	}
	return 0, nil
}
