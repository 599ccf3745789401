package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/armelhouessou/gotask/internal/model"
	"github.com/armelhouessou/gotask/internal/repository"
	"github.com/armelhouessou/gotask/pkg/auth"
)

// What the GORM repositories return when a scoped lookup misses.
var gormNotFound = gorm.ErrRecordNotFound

// Function-field fakes for the store contracts. A nil field means "succeed
// and do nothing".

type fakeUserStore struct {
	CreateFunc         func(user *model.User) error
	FindByIDFunc       func(id uuid.UUID) (*model.User, error)
	FindByEmailFunc    func(email string) (*model.User, error)
	UpdatePasswordFunc func(userID uuid.UUID, hashedPassword string) error
	ResetPasswordFunc  func(userID, otpID uuid.UUID, hashedPassword string) error
	UpdateProfileFunc  func(userID uuid.UUID, firstName, lastName, phoneNumber *string) error
	VerifyEmailFunc    func(userID uuid.UUID) error
	DeleteFunc         func(userID uuid.UUID) error
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(user)
	}
	return nil
}

func (f *fakeUserStore) FindByID(id uuid.UUID) (*model.User, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(id)
	}
	return &model.User{ID: id}, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	if f.FindByEmailFunc != nil {
		return f.FindByEmailFunc(email)
	}
	return &model.User{Email: email}, nil
}

func (f *fakeUserStore) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	if f.UpdatePasswordFunc != nil {
		return f.UpdatePasswordFunc(userID, hashedPassword)
	}
	return nil
}

func (f *fakeUserStore) ResetPassword(userID, otpID uuid.UUID, hashedPassword string) error {
	if f.ResetPasswordFunc != nil {
		return f.ResetPasswordFunc(userID, otpID, hashedPassword)
	}
	return nil
}

func (f *fakeUserStore) UpdateProfile(userID uuid.UUID, firstName, lastName, phoneNumber *string) error {
	if f.UpdateProfileFunc != nil {
		return f.UpdateProfileFunc(userID, firstName, lastName, phoneNumber)
	}
	return nil
}

func (f *fakeUserStore) VerifyEmail(userID uuid.UUID) error {
	if f.VerifyEmailFunc != nil {
		return f.VerifyEmailFunc(userID)
	}
	return nil
}

func (f *fakeUserStore) Delete(userID uuid.UUID) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(userID)
	}
	return nil
}

type fakeOTPStore struct {
	IssueFunc           func(userID uuid.UUID, purpose model.OTPPurpose, channel model.OTPChannel) (*model.OTPCode, error)
	FindLatestValidFunc func(userID uuid.UUID, code string, purpose model.OTPPurpose) (*model.OTPCode, error)
	MarkAsUsedFunc      func(otpID uuid.UUID) error
}

func (f *fakeOTPStore) Issue(userID uuid.UUID, purpose model.OTPPurpose, channel model.OTPChannel) (*model.OTPCode, error) {
	if f.IssueFunc != nil {
		return f.IssueFunc(userID, purpose, channel)
	}
	return &model.OTPCode{ID: uuid.New(), UserID: userID, Code: "123456", Purpose: purpose, Channel: channel}, nil
}

func (f *fakeOTPStore) FindLatestValid(userID uuid.UUID, code string, purpose model.OTPPurpose) (*model.OTPCode, error) {
	if f.FindLatestValidFunc != nil {
		return f.FindLatestValidFunc(userID, code, purpose)
	}
	return &model.OTPCode{ID: uuid.New(), UserID: userID, Code: code, Purpose: purpose}, nil
}

func (f *fakeOTPStore) MarkAsUsed(otpID uuid.UUID) error {
	if f.MarkAsUsedFunc != nil {
		return f.MarkAsUsedFunc(otpID)
	}
	return nil
}

type fakeTokenIssuer struct {
	GeneratePairFunc func(userID uuid.UUID, email string) (*auth.TokenPair, error)
}

func (f *fakeTokenIssuer) GeneratePair(userID uuid.UUID, email string) (*auth.TokenPair, error) {
	if f.GeneratePairFunc != nil {
		return f.GeneratePairFunc(userID, email)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

type fakeMailer struct {
	SendPasswordResetFunc    func(toEmail, fullName, code string, expiryMinutes int) error
	SendVerificationCodeFunc func(toEmail, fullName, code string, expiryMinutes int) error
	sent                     []string
}

func (f *fakeMailer) SendPasswordReset(toEmail, fullName, code string, expiryMinutes int) error {
	f.sent = append(f.sent, toEmail)
	if f.SendPasswordResetFunc != nil {
		return f.SendPasswordResetFunc(toEmail, fullName, code, expiryMinutes)
	}
	return nil
}

func (f *fakeMailer) SendVerificationCode(toEmail, fullName, code string, expiryMinutes int) error {
	f.sent = append(f.sent, toEmail)
	if f.SendVerificationCodeFunc != nil {
		return f.SendVerificationCodeFunc(toEmail, fullName, code, expiryMinutes)
	}
	return nil
}

type fakeTaskStore struct {
	CreateFunc       func(task *model.Task) error
	FindByIDFunc     func(authorID, taskID uuid.UUID) (*model.Task, error)
	ListFunc         func(authorID uuid.UUID, filter repository.TaskFilter) ([]model.Task, int64, error)
	UpdateFieldsFunc func(authorID, taskID uuid.UUID, updates map[string]interface{}) error
	DeleteFunc       func(authorID, taskID uuid.UUID) error
}

func (f *fakeTaskStore) Create(task *model.Task) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(task)
	}
	return nil
}

func (f *fakeTaskStore) FindByID(authorID, taskID uuid.UUID) (*model.Task, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(authorID, taskID)
	}
	return &model.Task{ID: taskID, AuthorID: authorID}, nil
}

func (f *fakeTaskStore) List(authorID uuid.UUID, filter repository.TaskFilter) ([]model.Task, int64, error) {
	if f.ListFunc != nil {
		return f.ListFunc(authorID, filter)
	}
	return nil, 0, nil
}

func (f *fakeTaskStore) UpdateFields(authorID, taskID uuid.UUID, updates map[string]interface{}) error {
	if f.UpdateFieldsFunc != nil {
		return f.UpdateFieldsFunc(authorID, taskID, updates)
	}
	return nil
}

func (f *fakeTaskStore) Delete(authorID, taskID uuid.UUID) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(authorID, taskID)
	}
	return nil
}

// memoryTaskStore is a map-backed TaskStore used where tests need real
// ownership scoping and state across calls.
type memoryTaskStore struct {
	tasks map[uuid.UUID]*model.Task
}

func newMemoryTaskStore() *memoryTaskStore {
	return &memoryTaskStore{tasks: map[uuid.UUID]*model.Task{}}
}

func (m *memoryTaskStore) Create(task *model.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memoryTaskStore) FindByID(authorID, taskID uuid.UUID) (*model.Task, error) {
	task, ok := m.tasks[taskID]
	if !ok || task.AuthorID != authorID {
		return nil, gormNotFound
	}
	cp := *task
	return &cp, nil
}

func (m *memoryTaskStore) List(authorID uuid.UUID, filter repository.TaskFilter) ([]model.Task, int64, error) {
	var out []model.Task
	for _, task := range m.tasks {
		if task.AuthorID == authorID {
			out = append(out, *task)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memoryTaskStore) UpdateFields(authorID, taskID uuid.UUID, updates map[string]interface{}) error {
	task, ok := m.tasks[taskID]
	if !ok || task.AuthorID != authorID {
		return gormNotFound
	}
	if v, ok := updates["title"]; ok {
		task.Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		task.Description = v.(string)
	}
	if v, ok := updates["is_completed"]; ok {
		task.IsCompleted = v.(bool)
	}
	return nil
}

func (m *memoryTaskStore) Delete(authorID, taskID uuid.UUID) error {
	task, ok := m.tasks[taskID]
	if !ok || task.AuthorID != authorID {
		return gormNotFound
	}
	delete(m.tasks, taskID)
	return nil
}
