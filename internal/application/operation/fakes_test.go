package operation_test

import (
	"context"
	"sort"

	"github.com/jfcastano/taller-api/internal/domain/entity"
	"github.com/jfcastano/taller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por los repos fake. El TxRunner fake toma un
// snapshot antes de cada callback y lo restaura si el callback falla, para
// reproducir la semántica de rollback de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	ops       map[string]*entity.Operation
	abonos    map[string][]*entity.Abono
	materials map[string]*entity.Material
	movs      []*entity.MaterialMovement
	audits    []*entity.AuditEntry
	clientes  map[string]*entity.Cliente
	products  map[string]*entity.Product
	bom       map[string][]entity.ProductMaterial
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ops:       make(map[string]*entity.Operation),
		abonos:    make(map[string][]*entity.Abono),
		materials: make(map[string]*entity.Material),
		clientes:  make(map[string]*entity.Cliente),
		products:  make(map[string]*entity.Product),
		bom:       make(map[string][]entity.ProductMaterial),
	}
}

func cloneOp(op *entity.Operation) *entity.Operation {
	c := *op
	if op.Costo != nil {
		d := *op.Costo
		c.Costo = &d
	}
	if op.FechaPrimerAbono != nil {
		t := *op.FechaPrimerAbono
		c.FechaPrimerAbono = &t
	}
	if op.FechaEntregaEstimada != nil {
		t := *op.FechaEntregaEstimada
		c.FechaEntregaEstimada = &t
	}
	c.Lines = append([]entity.OperationLine(nil), op.Lines...)
	return &c
}

func cloneMat(m *entity.Material) *entity.Material {
	c := *m
	return &c
}

type storeSnapshot struct {
	ops       map[string]*entity.Operation
	abonos    map[string][]*entity.Abono
	materials map[string]*entity.Material
	movs      []*entity.MaterialMovement
	audits    []*entity.AuditEntry
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		ops:       make(map[string]*entity.Operation, len(s.ops)),
		abonos:    make(map[string][]*entity.Abono, len(s.abonos)),
		materials: make(map[string]*entity.Material, len(s.materials)),
		movs:      append([]*entity.MaterialMovement(nil), s.movs...),
		audits:    append([]*entity.AuditEntry(nil), s.audits...),
	}
	for id, op := range s.ops {
		snap.ops[id] = cloneOp(op)
	}
	for id, list := range s.abonos {
		snap.abonos[id] = append([]*entity.Abono(nil), list...)
	}
	for id, m := range s.materials {
		snap.materials[id] = cloneMat(m)
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.ops = snap.ops
	s.abonos = snap.abonos
	s.materials = snap.materials
	s.movs = snap.movs
	s.audits = snap.audits
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	s *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	opRepo repository.OperationRepository,
	materialRepo repository.MaterialRepository,
	movRepo repository.MaterialMovementRepository,
	auditRepo repository.AuditRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(&fakeOpRepo{r.s}, &fakeMaterialRepo{r.s}, &fakeMovRepo{r.s}, &fakeAuditRepo{r.s})
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

// ── OperationRepository ───────────────────────────────────────────────────────

type fakeOpRepo struct {
	s *fakeStore
}

func (r *fakeOpRepo) Create(op *entity.Operation) error {
	r.s.ops[op.ID] = cloneOp(op)
	return nil
}

func (r *fakeOpRepo) GetByID(id string) (*entity.Operation, error) {
	op, ok := r.s.ops[id]
	if !ok {
		return nil, nil
	}
	return cloneOp(op), nil
}

func (r *fakeOpRepo) GetForUpdate(id string) (*entity.Operation, error) {
	return r.GetByID(id)
}

func (r *fakeOpRepo) Update(op *entity.Operation) error {
	r.s.ops[op.ID] = cloneOp(op)
	return nil
}

func (r *fakeOpRepo) ReplaceLines(operationID string, lines []entity.OperationLine) error {
	if op, ok := r.s.ops[operationID]; ok {
		op.Lines = append([]entity.OperationLine(nil), lines...)
	}
	return nil
}

func (r *fakeOpRepo) List(f repository.OperationFilter) ([]*entity.Operation, error) {
	var out []*entity.Operation
	for _, op := range r.s.ops {
		if f.Estado != "" && op.Estado != f.Estado {
			continue
		}
		if f.ClienteID != "" && op.ClienteID != f.ClienteID {
			continue
		}
		out = append(out, cloneOp(op))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOpRepo) CountByCliente(clienteID string) (int, error) {
	n := 0
	for _, op := range r.s.ops {
		if op.ClienteID == clienteID {
			n++
		}
	}
	return n, nil
}

func (r *fakeOpRepo) AddAbono(a *entity.Abono) error {
	c := *a
	r.s.abonos[a.OperationID] = append(r.s.abonos[a.OperationID], &c)
	return nil
}

func (r *fakeOpRepo) ListAbonos(operationID string) ([]*entity.Abono, error) {
	return append([]*entity.Abono(nil), r.s.abonos[operationID]...), nil
}

// ── MaterialRepository ────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	s *fakeStore
}

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	r.s.materials[m.ID] = cloneMat(m)
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	return cloneMat(m), nil
}

func (r *fakeMaterialRepo) GetForUpdateByIDs(ids []string) ([]*entity.Material, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	var out []*entity.Material
	for _, id := range sorted {
		if m, ok := r.s.materials[id]; ok {
			out = append(out, cloneMat(m))
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) Update(m *entity.Material) error {
	r.s.materials[m.ID] = cloneMat(m)
	return nil
}

func (r *fakeMaterialRepo) UpdateStock(id string, stock int) error {
	if m, ok := r.s.materials[id]; ok {
		m.Stock = stock
	}
	return nil
}

func (r *fakeMaterialRepo) List(limit, offset int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.s.materials {
		out = append(out, cloneMat(m))
	}
	return out, nil
}

func (r *fakeMaterialRepo) ListActive() ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.s.materials {
		if m.Activo {
			out = append(out, cloneMat(m))
		}
	}
	return out, nil
}

// ── MaterialMovementRepository ────────────────────────────────────────────────

type fakeMovRepo struct {
	s *fakeStore
}

func (r *fakeMovRepo) Create(mov *entity.MaterialMovement) error {
	c := *mov
	r.s.movs = append(r.s.movs, &c)
	return nil
}

func (r *fakeMovRepo) ListByMaterial(materialID string, limit, offset int) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	for _, mov := range r.s.movs {
		if mov.MaterialID == materialID {
			out = append(out, mov)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) ListByOperation(operationID string) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	for _, mov := range r.s.movs {
		if mov.OperationID == operationID {
			out = append(out, mov)
		}
	}
	return out, nil
}

// ── AuditRepository ───────────────────────────────────────────────────────────

type fakeAuditRepo struct {
	s *fakeStore
}

func (r *fakeAuditRepo) Create(e *entity.AuditEntry) error {
	c := *e
	r.s.audits = append(r.s.audits, &c)
	return nil
}

func (r *fakeAuditRepo) ListByEntidad(entidad, entidadID string, limit, offset int) ([]*entity.AuditEntry, error) {
	var out []*entity.AuditEntry
	for _, e := range r.s.audits {
		if e.Entidad == entidad && e.EntidadID == entidadID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── ClienteRepository ─────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	s *fakeStore
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error {
	cc := *c
	r.s.clientes[c.ID] = &cc
	return nil
}

func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeClienteRepo) GetByDocumento(documento string) (*entity.Cliente, error) {
	for _, c := range r.s.clientes {
		if c.Documento == documento {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range r.s.clientes {
		cc := *c
		out = append(out, &cc)
	}
	return out, nil
}

func (r *fakeClienteRepo) Update(c *entity.Cliente) error {
	cc := *c
	r.s.clientes[c.ID] = &cc
	return nil
}

func (r *fakeClienteRepo) Delete(id string) error {
	delete(r.s.clientes, id)
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	s *fakeStore
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	pp := *p
	r.s.products[p.ID] = &pp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	pp := *p
	return &pp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	pp := *p
	r.s.products[p.ID] = &pp
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		pp := *p
		out = append(out, &pp)
	}
	return out, nil
}

func (r *fakeProductRepo) SetMateriales(productID string, reqs []entity.ProductMaterial) error {
	r.s.bom[productID] = append([]entity.ProductMaterial(nil), reqs...)
	return nil
}

func (r *fakeProductRepo) GetMateriales(productID string) ([]entity.ProductMaterial, error) {
	return append([]entity.ProductMaterial(nil), r.s.bom[productID]...), nil
}
