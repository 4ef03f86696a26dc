package user

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/department"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeProfileRepo struct {
	profiles map[string]user.Profile // keyed by id
}

func newFakeProfileRepo(profiles ...user.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[string]user.Profile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ context.Context, p user.Profile) (user.Profile, error) {
	r.profiles[p.ID] = p
	return p, nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (user.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return user.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByEmail(_ context.Context, email string) (user.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return user.Profile{}, pgx.ErrNoRows
}

func (r *fakeProfileRepo) List(_ context.Context) ([]user.Profile, error) {
	out := make([]user.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.profiles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.profiles, id)
	return nil
}

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func newFakeDepartmentRepo(departments ...department.Department) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{departments: make(map[string]department.Department)}
	for _, d := range departments {
		r.departments[d.ID] = d
	}
	return r
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return department.Department{}, pgx.ErrNoRows
	}
	return d, nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	out := make([]department.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, d)
	}
	return out, nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.LeaveBalance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
}

func (r *fakeBalanceRepo) Create(_ context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.balances[b.UserID] = b
	return b, nil
}

func (r *fakeBalanceRepo) GetByUserID(_ context.Context, userID string) (leave.LeaveBalance, error) {
	b, ok := r.balances[userID]
	if !ok {
		return leave.LeaveBalance{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r *fakeBalanceRepo) Debit(_ context.Context, userID string, days float64) error {
	b, ok := r.balances[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	b.RemainingDays -= days
	r.balances[userID] = b
	return nil
}

func newTestService(profiles *fakeProfileRepo, departments *fakeDepartmentRepo, balances *fakeBalanceRepo) *Service {
	return &Service{
		profiles:    profiles,
		departments: departments,
		balances:    balances,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

var engineering = department.Department{ID: "dept-1", Name: "Engineering"}

func createRequest() user.CreateUserRequest {
	departmentID := engineering.ID
	return user.CreateUserRequest{
		FullName:     "Jordan Example",
		Email:        "jordan@example.com",
		Password:     "correct-horse",
		Role:         user.RoleEmployee,
		DepartmentID: &departmentID,
	}
}

func TestCreateUserSeedsBalance(t *testing.T) {
	profiles := newFakeProfileRepo()
	balances := newFakeBalanceRepo()
	svc := newTestService(profiles, newFakeDepartmentRepo(engineering), balances)

	created, err := svc.CreateUser(context.Background(), createRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	balance, err := balances.GetByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(defaultAnnualEntitlement), balance.TotalEntitled)
	assert.Equal(t, float64(defaultAnnualEntitlement), balance.RemainingDays)
}

func TestCreateUserExplicitBalance(t *testing.T) {
	balances := newFakeBalanceRepo()
	svc := newTestService(newFakeProfileRepo(), newFakeDepartmentRepo(engineering), balances)

	req := createRequest()
	req.LeaveBalance = 12
	created, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)

	balance, err := balances.GetByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, balance.TotalEntitled)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := newTestService(newFakeProfileRepo(), newFakeDepartmentRepo(engineering), newFakeBalanceRepo())

	created, err := svc.CreateUser(context.Background(), createRequest())
	require.NoError(t, err)
	require.NotNil(t, created.PasswordHash)
	assert.NotEqual(t, "correct-horse", *created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*created.PasswordHash), []byte("correct-horse")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	profiles := newFakeProfileRepo(user.Profile{ID: "user-1", Email: "jordan@example.com"})
	svc := newTestService(profiles, newFakeDepartmentRepo(engineering), newFakeBalanceRepo())

	_, err := svc.CreateUser(context.Background(), createRequest())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestCreateUserUnknownDepartment(t *testing.T) {
	svc := newTestService(newFakeProfileRepo(), newFakeDepartmentRepo(), newFakeBalanceRepo())

	_, err := svc.CreateUser(context.Background(), createRequest())
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestCreateUserAdminSkipsDepartmentCheck(t *testing.T) {
	svc := newTestService(newFakeProfileRepo(), newFakeDepartmentRepo(), newFakeBalanceRepo())

	req := createRequest()
	req.Role = user.RoleAdmin
	req.DepartmentID = nil
	created, err := svc.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, created.DepartmentID)
}

func TestDeleteUser(t *testing.T) {
	profiles := newFakeProfileRepo(user.Profile{ID: "user-1", Email: "jordan@example.com"})
	svc := newTestService(profiles, newFakeDepartmentRepo(), newFakeBalanceRepo())

	require.NoError(t, svc.DeleteUser(context.Background(), "user-1"))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "user-1"), user.ErrProfileNotFound)
}

func TestListUsers(t *testing.T) {
	profiles := newFakeProfileRepo(
		user.Profile{ID: "user-1", Email: "a@example.com", Role: user.RoleEmployee},
		user.Profile{ID: "user-2", Email: "b@example.com", Role: user.RoleAdmin},
	)
	svc := newTestService(profiles, newFakeDepartmentRepo(), newFakeBalanceRepo())

	listed, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
