package usecase_test

// Dobles de prueba en memoria para los puertos de repositorio. Cada fake
// guarda sus filas en mapas y expone campos de inyección de error para
// simular fallos en pasos concretos de las mutaciones compuestas.

import (
	"context"
	"sort"

	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// pageOf recorta una página de la lista completa según los parámetros,
// con la misma aritmética de offset que los adaptadores reales.
func pageOf[T any](all []T, params repository.ListParams) []T {
	offset := params.Offset(repository.DefaultPageLimit)
	if offset >= len(all) {
		return nil
	}
	end := offset + repository.DefaultPageLimit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	byID   map[int64]*entity.Client
	nextID int64

	createErr      error
	primaryRefsErr error

	primaryRefsCalls int
	deleted          []int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: map[int64]*entity.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	cp := *c
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// List imita el orden y la paginación del adaptador real: id descendente,
// offset (page-1)*limit y a lo sumo una página de filas.
func (f *fakeClientRepo) List(_ context.Context, params repository.ListParams) ([]entity.ClientBrief, error) {
	all := make([]entity.ClientBrief, 0, len(f.byID))
	for _, c := range f.byID {
		all = append(all, entity.ClientBrief{ID: c.ID, Name: c.Name, RegistrationNumber: c.RegistrationNumber, CreatedAt: c.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, params), nil
}

func (f *fakeClientRepo) Count(_ context.Context, _ repository.Filter) (int, error) {
	return len(f.byID), nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) UpdatePrimaryRefs(_ context.Context, id int64, addressID, contactID *int64) error {
	f.primaryRefsCalls++
	if f.primaryRefsErr != nil {
		return f.primaryRefsErr
	}
	c, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.PrimaryAddressID = addressID
	c.PrimaryContactID = contactID
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	byID   map[int64]*entity.Supplier
	nextID int64
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byID: map[int64]*entity.Supplier{}}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) (int64, error) {
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSupplierRepo) List(_ context.Context, params repository.ListParams) ([]entity.SupplierBrief, error) {
	all := make([]entity.SupplierBrief, 0, len(f.byID))
	for _, s := range f.byID {
		all = append(all, entity.SupplierBrief{ID: s.ID, Name: s.Name, FieldOfBusiness: s.FieldOfBusiness, CreatedAt: s.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, params), nil
}

func (f *fakeSupplierRepo) Count(_ context.Context, _ repository.Filter) (int, error) {
	return len(f.byID), nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) UpdatePrimaryRefs(_ context.Context, id int64, addressID, contactID *int64) error {
	s, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.PrimaryAddressID = addressID
	s.PrimaryContactID = contactID
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Direcciones y contactos
// ──────────────────────────────────────────────────────────────────────────────

type fakeAddressRepo struct {
	byID   map[int64]*entity.Address
	nextID int64

	createErr error

	deletedOwners []domain.AccountRef
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{byID: map[int64]*entity.Address{}}
}

func (f *fakeAddressRepo) Create(_ context.Context, a *entity.Address) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	cp := *a
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeAddressRepo) GetByID(_ context.Context, id int64) (*entity.Address, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAddressRepo) ListByOwner(_ context.Context, owner domain.AccountRef) ([]entity.Address, error) {
	var out []entity.Address
	for _, a := range f.byID {
		if a.Owner == owner {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) Update(_ context.Context, a *entity.Address) error {
	if _, ok := f.byID[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAddressRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAddressRepo) DeleteByOwner(_ context.Context, owner domain.AccountRef) error {
	f.deletedOwners = append(f.deletedOwners, owner)
	for id, a := range f.byID {
		if a.Owner == owner {
			delete(f.byID, id)
		}
	}
	return nil
}

type fakeContactRepo struct {
	byID   map[int64]*entity.Contact
	nextID int64

	createErr error

	deletedOwners []domain.AccountRef
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: map[int64]*entity.Contact{}}
}

func (f *fakeContactRepo) Create(_ context.Context, c *entity.Contact) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	cp := *c
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id int64) (*entity.Contact, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContactRepo) ListByOwner(_ context.Context, owner domain.AccountRef) ([]entity.Contact, error) {
	var out []entity.Contact
	for _, c := range f.byID {
		if c.Owner == owner {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) Update(_ context.Context, c *entity.Contact) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeContactRepo) DeleteByOwner(_ context.Context, owner domain.AccountRef) error {
	f.deletedOwners = append(f.deletedOwners, owner)
	for id, c := range f.byID {
		if c.Owner == owner {
			delete(f.byID, id)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyectos y líneas
// ──────────────────────────────────────────────────────────────────────────────

type fakeProjectRepo struct {
	byID   map[int64]*entity.Project
	nextID int64

	countByClient map[int64]int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{byID: map[int64]*entity.Project{}, countByClient: map[int64]int{}}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *entity.Project) (int64, error) {
	f.nextID++
	cp := *p
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id int64) (*entity.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjectRepo) List(_ context.Context, params repository.ListParams) ([]entity.ProjectBrief, error) {
	all := make([]entity.ProjectBrief, 0, len(f.byID))
	for _, p := range f.byID {
		all = append(all, entity.ProjectBrief{ID: p.ID, Name: p.Name, Status: p.Status, CreatedAt: p.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, params), nil
}

func (f *fakeProjectRepo) Count(_ context.Context, _ repository.Filter) (int, error) {
	return len(f.byID), nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *entity.Project) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) UpdateOwner(_ context.Context, id, ownerID int64, _ int64) error {
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.OwnerID = ownerID
	return nil
}

func (f *fakeProjectRepo) UpdateStatus(_ context.Context, id int64, status entity.ProjectStatus, _ int64) error {
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProjectRepo) CountByClient(_ context.Context, clientID int64) (int, error) {
	return f.countByClient[clientID], nil
}

type fakeLineItemRepo struct {
	purchases []entity.PurchaseItem
	sales     []entity.SaleItem
	links     []entity.ProjectItem
	nextID    int64

	linkErr error

	deletedProjects []int64
}

func newFakeLineItemRepo() *fakeLineItemRepo { return &fakeLineItemRepo{} }

func (f *fakeLineItemRepo) CreatePurchase(_ context.Context, line *entity.PurchaseItem) (int64, error) {
	f.nextID++
	cp := *line
	cp.ID = f.nextID
	f.purchases = append(f.purchases, cp)
	return cp.ID, nil
}

func (f *fakeLineItemRepo) CreateSale(_ context.Context, line *entity.SaleItem) (int64, error) {
	f.nextID++
	cp := *line
	cp.ID = f.nextID
	f.sales = append(f.sales, cp)
	return cp.ID, nil
}

func (f *fakeLineItemRepo) CreateLink(_ context.Context, link *entity.ProjectItem) (int64, error) {
	if f.linkErr != nil {
		return 0, f.linkErr
	}
	for _, l := range f.links {
		if l.ProjectID == link.ProjectID && l.ItemID == link.ItemID {
			return 0, domain.ErrDuplicate
		}
	}
	f.nextID++
	cp := *link
	cp.ID = f.nextID
	f.links = append(f.links, cp)
	return cp.ID, nil
}

func (f *fakeLineItemRepo) PurchasesByProject(_ context.Context, projectID int64) ([]entity.PurchaseItem, error) {
	var out []entity.PurchaseItem
	for _, l := range f.purchases {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLineItemRepo) SalesByProject(_ context.Context, projectID int64) ([]entity.SaleItem, error) {
	var out []entity.SaleItem
	for _, l := range f.sales {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLineItemRepo) LinksByProject(_ context.Context, projectID int64) ([]entity.ProjectItem, error) {
	var out []entity.ProjectItem
	for _, l := range f.links {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLineItemRepo) CountByItem(_ context.Context, itemID int64) (int, error) {
	n := 0
	for _, l := range f.purchases {
		if l.ItemID == itemID {
			n++
		}
	}
	for _, l := range f.sales {
		if l.ItemID == itemID {
			n++
		}
	}
	for _, l := range f.links {
		if l.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLineItemRepo) CountBySupplier(_ context.Context, supplierID int64) (int, error) {
	n := 0
	for _, l := range f.purchases {
		if l.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLineItemRepo) DeleteByProject(_ context.Context, projectID int64) error {
	f.deletedProjects = append(f.deletedProjects, projectID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	byID   map[int64]*entity.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: map[int64]*entity.Item{}}
}

func (f *fakeItemRepo) Create(_ context.Context, i *entity.Item) (int64, error) {
	f.nextID++
	cp := *i
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	i, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (f *fakeItemRepo) List(_ context.Context, params repository.ListParams) ([]entity.ItemBrief, error) {
	all := make([]entity.ItemBrief, 0, len(f.byID))
	for _, i := range f.byID {
		all = append(all, entity.ItemBrief{ID: i.ID, Name: i.Name, Type: i.Type, Make: i.Make})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, params), nil
}

func (f *fakeItemRepo) Count(_ context.Context, _ repository.Filter) (int, error) {
	return len(f.byID), nil
}

func (f *fakeItemRepo) Update(_ context.Context, i *entity.Item) error {
	if _, ok := f.byID[i.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *i
	f.byID[i.ID] = &cp
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocumentRepo struct {
	byID      map[int64]*entity.Document
	relations []entity.DocumentRelation
	nextID    int64

	createErr   error
	relationErr error

	deletedRelOwners []domain.DocumentRef
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{byID: map[int64]*entity.Document{}}
}

func (f *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	cp := *d
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeDocumentRepo) GetByID(_ context.Context, id int64) (*entity.Document, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocumentRepo) List(_ context.Context, params repository.ListParams) ([]entity.DocumentBrief, error) {
	all := make([]entity.DocumentBrief, 0, len(f.byID))
	for _, d := range f.byID {
		all = append(all, entity.DocumentBrief{ID: d.ID, Name: d.Name, Extension: d.Extension, Private: d.Private, CreatedAt: d.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return pageOf(all, params), nil
}

func (f *fakeDocumentRepo) Count(_ context.Context, _ repository.Filter) (int, error) {
	return len(f.byID), nil
}

func (f *fakeDocumentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeDocumentRepo) CreateRelation(_ context.Context, rel *entity.DocumentRelation) (int64, error) {
	if f.relationErr != nil {
		return 0, f.relationErr
	}
	f.nextID++
	cp := *rel
	cp.ID = f.nextID
	f.relations = append(f.relations, cp)
	return cp.ID, nil
}

func (f *fakeDocumentRepo) RelationsByDocument(_ context.Context, documentID int64) ([]entity.DocumentRelation, error) {
	var out []entity.DocumentRelation
	for _, r := range f.relations {
		if r.DocumentID == documentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) ListByOwner(_ context.Context, owner domain.DocumentRef) ([]entity.DocumentBrief, error) {
	var out []entity.DocumentBrief
	for _, r := range f.relations {
		if r.Owner == owner {
			if d, ok := f.byID[r.DocumentID]; ok {
				out = append(out, entity.DocumentBrief{
					ID: d.ID, Name: d.Name, Extension: d.Extension, Private: d.Private, CreatedAt: d.CreatedAt,
				})
			}
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) DeleteRelation(_ context.Context, relationID int64) error {
	for i, r := range f.relations {
		if r.ID == relationID {
			f.relations = append(f.relations[:i], f.relations[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeDocumentRepo) DeleteRelationsByDocument(_ context.Context, documentID int64) error {
	kept := f.relations[:0]
	for _, r := range f.relations {
		if r.DocumentID != documentID {
			kept = append(kept, r)
		}
	}
	f.relations = kept
	return nil
}

func (f *fakeDocumentRepo) DeleteRelationsByOwner(_ context.Context, owner domain.DocumentRef) error {
	f.deletedRelOwners = append(f.deletedRelOwners, owner)
	kept := f.relations[:0]
	for _, r := range f.relations {
		if r.Owner != owner {
			kept = append(kept, r)
		}
	}
	f.relations = kept
	return nil
}

func (f *fakeDocumentRepo) CountRelations(_ context.Context, documentID int64) (int, error) {
	n := 0
	for _, r := range f.relations {
		if r.DocumentID == documentID {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner y almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

// fakeTx ejecuta fn sobre los mismos fakes del caso de uso (no hay revert
// real del estado; los tests verifican qué pasos llegaron a ejecutarse).
type fakeTx struct {
	repos usecase.TxRepos

	runs      int
	lastError error
}

func (f *fakeTx) Run(_ context.Context, fn func(r usecase.TxRepos) error) error {
	f.runs++
	f.lastError = fn(f.repos)
	return f.lastError
}

type fakeStorage struct {
	files  map[string][]byte
	nextID int

	saveErr error

	removed []string
}

func newFakeStorage() *fakeStorage { return &fakeStorage{files: map[string][]byte{}} }

func (f *fakeStorage) SaveFile(data []byte, extension string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.nextID++
	path := "doc-" + extension + "-" + string(rune('a'+f.nextID-1))
	f.files[path] = data
	return path, nil
}

func (f *fakeStorage) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (f *fakeStorage) Remove(path string) error {
	delete(f.files, path)
	f.removed = append(f.removed, path)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID   map[int64]*entity.User
	nextID int64

	roleUpdates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	for _, e := range f.byID {
		if e.Username == u.Username {
			return 0, domain.ErrDuplicate
		}
	}
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.UserBrief, error) {
	out := make([]entity.UserBrief, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, entity.UserBrief{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Role, Active: u.Active})
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	f.roleUpdates++
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) UpdateActive(_ context.Context, id int64, active bool) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) SaveLoginState(_ context.Context, user *entity.User) error {
	u, ok := f.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.WrongAttempts = user.WrongAttempts
	u.LockedUntil = user.LockedUntil
	u.LastActive = user.LastActive
	return nil
}
