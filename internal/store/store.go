// Package store implements the whole-snapshot record store: every operation
// reads the eight collections, mutates them in memory and writes them back
// in one transaction. A store-level mutex serializes the read-modify-write
// cycle so concurrent requests cannot lose each other's updates.
package store

import (
	"sync"

	"gorm.io/gorm"

	"github.com/llucior2/control-de-contratos/internal/models"
)

type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Read loads the full snapshot. An empty database yields the eight empty
// collections, mirroring the first read of a missing document.
func (s *Store) Read() (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	for _, dst := range []any{
		&snap.RazonesSociales, &snap.Clientes, &snap.Contratos,
		&snap.OrdenesDeCambio, &snap.Facturas, &snap.Pagos,
		&snap.CatalogoConceptos, &snap.ProcesosConstructivos,
	} {
		if err := s.db.Order("id").Find(dst).Error; err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// Write replaces the persisted document with the given snapshot.
func (s *Store) Write(snap *models.Snapshot) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{
			&models.RazonSocial{}, &models.Cliente{}, &models.Contrato{},
			&models.OrdenDeCambio{}, &models.Factura{}, &models.Pago{},
			&models.CatalogoConcepto{}, &models.ProcesoConstructivo{},
		} {
			if err := wipe.Delete(model).Error; err != nil {
				return err
			}
		}
		return createAll(tx, snap)
	})
}

func createAll(tx *gorm.DB, snap *models.Snapshot) error {
	if err := create(tx, snap.RazonesSociales); err != nil {
		return err
	}
	if err := create(tx, snap.Clientes); err != nil {
		return err
	}
	if err := create(tx, snap.Contratos); err != nil {
		return err
	}
	if err := create(tx, snap.OrdenesDeCambio); err != nil {
		return err
	}
	if err := create(tx, snap.Facturas); err != nil {
		return err
	}
	if err := create(tx, snap.Pagos); err != nil {
		return err
	}
	if err := create(tx, snap.CatalogoConceptos); err != nil {
		return err
	}
	return create(tx, snap.ProcesosConstructivos)
}

func create[T any](tx *gorm.DB, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

// View runs fn against a snapshot without writing back.
func (s *Store) View(fn func(*models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.Read()
	if err != nil {
		return err
	}
	return fn(snap)
}

// Update runs fn inside the locked read-modify-write cycle and persists the
// mutated snapshot when fn succeeds.
func (s *Store) Update(fn func(*models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.Read()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.Write(snap)
}

// Ping checks connectivity to the underlying database.
func (s *Store) Ping() error {
	return s.db.Exec("SELECT 1").Error
}
