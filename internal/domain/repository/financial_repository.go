package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// FinancialRepository define el puerto de persistencia para
// FinancialTransaction. La baja es física.
type FinancialRepository interface {
	Create(tx *entity.FinancialTransaction) error
	GetByID(id int64) (*entity.FinancialTransaction, error)
	List() ([]*entity.FinancialTransaction, error)
	Update(id int64, patch entity.FinancialTransactionPatch) (*entity.FinancialTransaction, error)
	Delete(id int64) (bool, error)
}
