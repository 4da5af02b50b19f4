package services

import (
	"context"
	"fmt"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/core/domain"

	"gorm.io/gorm"
)

// In-memory repository stubs for service tests.

type stubContributionRepo struct {
	rows    []*models.Contribution
	nextID  int
	listErr error
}

func (r *stubContributionRepo) Create(ctx context.Context, c *models.Contribution) error {
	r.nextID++
	c.ID = fmt.Sprintf("contrib-%d", r.nextID)
	clone := *c
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *stubContributionRepo) GetByID(ctx context.Context, id string) (*models.Contribution, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := *row
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubContributionRepo) Update(ctx context.Context, c *models.Contribution) error {
	for i, row := range r.rows {
		if row.ID == c.ID {
			clone := *c
			r.rows[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubContributionRepo) Delete(ctx context.Context, id string) error {
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubContributionRepo) ListAll(ctx context.Context, limit int) ([]*models.Contribution, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit > len(r.rows) {
		limit = len(r.rows)
	}
	return r.rows[:limit], nil
}

func (r *stubContributionRepo) ListByMember(ctx context.Context, memberID string) ([]*models.Contribution, error) {
	var out []*models.Contribution
	for _, row := range r.rows {
		if row.MemberID == memberID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubContributionRepo) ListByMemberYear(ctx context.Context, memberID string, year int) ([]*models.Contribution, error) {
	var out []*models.Contribution
	for _, row := range r.rows {
		if row.MemberID == memberID && row.Year == year {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubContributionRepo) SumAmount(ctx context.Context) (float64, error) {
	var sum float64
	for _, row := range r.rows {
		sum += row.Amount
	}
	return sum, nil
}

type stubProfileRepo struct {
	profiles map[string]*models.Profile
}

func newStubProfileRepo(ids ...string) *stubProfileRepo {
	r := &stubProfileRepo{profiles: make(map[string]*models.Profile)}
	for _, id := range ids {
		r.profiles[id] = &models.Profile{ID: id, FullName: "Member " + id, Status: "active"}
	}
	return r
}

func (r *stubProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *stubProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) List(ctx context.Context, offset, limit int) ([]*models.Profile, int64, error) {
	var out []*models.Profile
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, int64(len(r.profiles)), nil
}

func (r *stubProfileRepo) Update(ctx context.Context, p *models.Profile) error {
	if _, ok := r.profiles[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *stubProfileRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.profiles[id]
	return ok, nil
}

// stubRoleRepo simulates the transactional role swap: when failNext is
// set, ReplaceForUser fails and leaves the stored set untouched, the way
// a rolled-back transaction would.
type stubRoleRepo struct {
	roles    map[string]domain.RoleSet
	failNext error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]domain.RoleSet)}
}

func (r *stubRoleRepo) ListByUser(ctx context.Context, userID string) (domain.RoleSet, error) {
	return r.roles[userID], nil
}

func (r *stubRoleRepo) ReplaceForUser(ctx context.Context, userID string, roles domain.RoleSet) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.roles[userID] = roles
	return nil
}

type stubUserRepo struct {
	deleted []string
}

func (r *stubUserRepo) Create(ctx context.Context, u *models.User) error  { return nil }
func (r *stubUserRepo) Update(ctx context.Context, u *models.User) error  { return nil }
func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (r *stubUserRepo) DeleteCascade(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

// Session fixtures

func adminSession(id string) domain.Session {
	return domain.Session{UserID: id, Roles: domain.RoleSet{domain.RoleAdmin}}
}

func treasurerSession(id string) domain.Session {
	return domain.Session{UserID: id, Roles: domain.RoleSet{domain.RoleTreasurer}}
}

func memberSession(id string) domain.Session {
	return domain.Session{UserID: id, Roles: domain.RoleSet{domain.RoleMember}}
}
