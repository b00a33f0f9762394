package memory

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.FinancialRepository = (*FinancialRepo)(nil)

// FinancialRepo implementación en memoria del puerto FinancialRepository.
type FinancialRepo struct {
	s *Store
}

// NewFinancialRepository construye el adaptador sobre el Store dado.
func NewFinancialRepository(s *Store) *FinancialRepo {
	return &FinancialRepo{s: s}
}

// Create asigna id y fecha de creación y guarda la transacción. Status vacío
// queda en pending.
func (r *FinancialRepo) Create(tx *entity.FinancialTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tx.Status == "" {
		tx.Status = entity.TransactionStatusPending
	}
	r.s.txSeq++
	tx.ID = r.s.txSeq
	tx.CreatedAt = time.Now()
	r.s.transactions[tx.ID] = *tx
	return nil
}

// GetByID devuelve la transacción o nil, nil si no existe.
func (r *FinancialRepo) GetByID(id int64) (*entity.FinancialTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// List devuelve todas las transacciones en orden ascendente de id.
func (r *FinancialRepo) List() ([]*entity.FinancialTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.FinancialTransaction, 0, len(r.s.transactions))
	for _, id := range sortedIDs(r.s.transactions) {
		t := r.s.transactions[id]
		list = append(list, &t)
	}
	return list, nil
}

// Update fusiona el parche sobre la transacción. nil, nil si el id no existe.
func (r *FinancialRepo) Update(id int64, patch entity.FinancialTransactionPatch) (*entity.FinancialTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.PaymentDate != nil {
		t.PaymentDate = patch.PaymentDate
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.OrderID != nil {
		t.OrderID = patch.OrderID
	}
	if patch.CustomerID != nil {
		t.CustomerID = patch.CustomerID
	}
	r.s.transactions[id] = t
	return &t, nil
}

// Delete elimina físicamente la transacción. Devuelve false si el id no existe.
func (r *FinancialRepo) Delete(id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.transactions[id]; !ok {
		return false, nil
	}
	delete(r.s.transactions, id)
	return true, nil
}
