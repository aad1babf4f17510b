package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/ndtrung/warehouse-backoffice/internal/domain"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/entity"
	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// In-memory fakes for the repository ports. They mirror the store contract:
// (nil, nil) on absence, ErrNotFound from Update, bool from Delete.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) GetAll(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return domain.ErrConflict
		}
	}
	c := *u
	f.users[u.ID] = &c
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *u
	f.users[u.ID] = &c
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.Username == identifier {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter) ([]*entity.User, int, error) {
	var matched []*entity.User
	kw := strings.ToLower(filter.Keyword)
	for _, u := range f.users {
		if kw != "" &&
			!strings.Contains(strings.ToLower(u.Email), kw) &&
			!strings.Contains(strings.ToLower(u.Username), kw) &&
			!strings.Contains(strings.ToLower(u.FullName), kw) {
			continue
		}
		if filter.RoleID != "" && u.RoleID != filter.RoleID {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		if filter.From != nil && u.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && u.CreatedAt.After(*filter.To) {
			continue
		}
		c := *u
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if filter.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	p := filter.Page.Clamp()
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func newFakeRoleRepo(roles ...*entity.Role) *fakeRoleRepo {
	f := &fakeRoleRepo{roles: map[string]*entity.Role{}}
	for _, r := range roles {
		f.roles[r.ID] = r
	}
	return f
}

func (f *fakeRoleRepo) GetAll(context.Context) ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(f.roles))
	for _, r := range f.roles {
		c := *r
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (*entity.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (f *fakeRoleRepo) Create(_ context.Context, r *entity.Role) error {
	c := *r
	f.roles[r.ID] = &c
	return nil
}

func (f *fakeRoleRepo) Update(_ context.Context, r *entity.Role) error {
	if _, ok := f.roles[r.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *r
	f.roles[r.ID] = &c
	return nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.roles[id]; !ok {
		return false, nil
	}
	delete(f.roles, id)
	return true, nil
}

func (f *fakeRoleRepo) GetByCode(_ context.Context, code string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.Code == code {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
}

func (f *fakeSupplierRepo) GetAll(context.Context) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	for _, existing := range f.suppliers {
		if existing.Code == s.Code {
			return domain.ErrConflict
		}
	}
	c := *s
	f.suppliers[s.ID] = &c
	return nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	if _, ok := f.suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *s
	f.suppliers[s.ID] = &c
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.suppliers[id]; !ok {
		return false, nil
	}
	delete(f.suppliers, id)
	return true, nil
}

func (f *fakeSupplierRepo) GetByCode(_ context.Context, code string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.Code == code {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) List(_ context.Context, filter repository.PartnerFilter) ([]*entity.Supplier, int, error) {
	var matched []*entity.Supplier
	kw := strings.ToLower(filter.Keyword)
	for _, s := range f.suppliers {
		if kw != "" &&
			!strings.Contains(strings.ToLower(s.Code), kw) &&
			!strings.Contains(strings.ToLower(s.Name), kw) {
			continue
		}
		if filter.IsActive != nil && s.IsActive != *filter.IsActive {
			continue
		}
		c := *s
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if filter.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	p := filter.Page.Clamp()
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

type fakePurchaseOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newFakePurchaseOrderRepo(orders ...*entity.PurchaseOrder) *fakePurchaseOrderRepo {
	f := &fakePurchaseOrderRepo{orders: map[string]*entity.PurchaseOrder{}}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakePurchaseOrderRepo) GetAll(context.Context) ([]*entity.PurchaseOrder, error) {
	out := make([]*entity.PurchaseOrder, 0, len(f.orders))
	for _, o := range f.orders {
		c := *o
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakePurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	c.Lines = append([]entity.PurchaseOrderLine(nil), o.Lines...)
	return &c, nil
}

func (f *fakePurchaseOrderRepo) Create(_ context.Context, o *entity.PurchaseOrder) error {
	c := *o
	f.orders[o.ID] = &c
	return nil
}

func (f *fakePurchaseOrderRepo) Update(_ context.Context, o *entity.PurchaseOrder) error {
	if _, ok := f.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *o
	c.Lines = append([]entity.PurchaseOrderLine(nil), o.Lines...)
	f.orders[o.ID] = &c
	return nil
}

func (f *fakePurchaseOrderRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)
	return true, nil
}

func (f *fakePurchaseOrderRepo) GetByCode(_ context.Context, code string) (*entity.PurchaseOrder, error) {
	for _, o := range f.orders {
		if o.Code == code {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakePurchaseOrderRepo) List(_ context.Context, filter repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, int, error) {
	var matched []*entity.PurchaseOrder
	kw := strings.ToLower(filter.Keyword)
	for _, o := range f.orders {
		if kw != "" &&
			!strings.Contains(strings.ToLower(o.Code), kw) &&
			!strings.Contains(strings.ToLower(o.Requester), kw) {
			continue
		}
		if filter.SupplierID != "" && o.SupplierID != filter.SupplierID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		c := *o
		matched = append(matched, &c)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	p := filter.Page.Clamp()
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// fakeUoW satisfies the unit-of-work port over the fakes above. Begin,
// Commit and Rollback only track state; the fakes apply writes immediately,
// which is enough for testing the business rules around them.
type fakeUoW struct {
	userRepo     *fakeUserRepo
	roleRepo     *fakeRoleRepo
	supplierRepo *fakeSupplierRepo
	orderRepo    *fakePurchaseOrderRepo

	began      int
	committed  int
	rolledBack int
	txActive   bool
}

func (f *fakeUoW) Users() repository.UserRepository                   { return f.userRepo }
func (f *fakeUoW) Roles() repository.RoleRepository                   { return f.roleRepo }
func (f *fakeUoW) Suppliers() repository.SupplierRepository           { return f.supplierRepo }
func (f *fakeUoW) Receivers() repository.ReceiverRepository           { return nil }
func (f *fakeUoW) Warehouses() repository.WarehouseRepository         { return nil }
func (f *fakeUoW) PurchaseOrders() repository.PurchaseOrderRepository { return f.orderRepo }

func (f *fakeUoW) Begin(context.Context) error {
	f.began++
	f.txActive = true
	return nil
}

func (f *fakeUoW) Commit(context.Context) error {
	f.committed++
	f.txActive = false
	return nil
}

func (f *fakeUoW) Rollback(context.Context) error {
	if f.txActive {
		f.rolledBack++
		f.txActive = false
	}
	return nil
}

func (f *fakeUoW) SaveChanges(ctx context.Context) error {
	if !f.txActive {
		return nil
	}
	return f.Commit(ctx)
}

type fakeUoWFactory struct {
	uow *fakeUoW
}

func (f *fakeUoWFactory) New() repository.UnitOfWork { return f.uow }
