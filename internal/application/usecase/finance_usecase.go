package usecase

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// FinanceUseCase casos de uso para transacciones financieras. El estado
// "overdue" de las respuestas se deriva contra el reloj en cada consulta.
type FinanceUseCase struct {
	repo repository.FinancialRepository
	now  func() time.Time
}

// NewFinanceUseCase construye el caso de uso con el reloj real.
func NewFinanceUseCase(repo repository.FinancialRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo, now: time.Now}
}

// Create crea una transacción. Type inválido se rechaza; Status vacío queda
// en pending.
func (uc *FinanceUseCase) Create(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionTypeIncome && in.Type != entity.TransactionTypeExpense {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.TransactionStatusPending
	}
	if !validTransactionStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.FinancialTransaction{
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		PaymentDate: in.PaymentDate,
		Status:      status,
		OrderID:     in.OrderID,
		CustomerID:  in.CustomerID,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return uc.toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción, o nil, nil si no existe.
func (uc *FinanceUseCase) GetByID(id int64) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return uc.toTransactionResponse(tx), nil
}

// List lista las transacciones.
func (uc *FinanceUseCase) List() (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *uc.toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica una actualización parcial. nil, nil si el id no existe.
func (uc *FinanceUseCase) Update(id int64, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Type != nil && *in.Type != entity.TransactionTypeIncome && *in.Type != entity.TransactionTypeExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !validTransactionStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	tx, err := uc.repo.Update(id, entity.FinancialTransactionPatch{
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		PaymentDate: in.PaymentDate,
		Status:      in.Status,
		OrderID:     in.OrderID,
		CustomerID:  in.CustomerID,
	})
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return uc.toTransactionResponse(tx), nil
}

// Delete elimina físicamente la transacción. false si el id no existe.
func (uc *FinanceUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func validTransactionStatus(s string) bool {
	return s == entity.TransactionStatusPending || s == entity.TransactionStatusPaid || s == entity.TransactionStatusOverdue
}

func (uc *FinanceUseCase) toTransactionResponse(t *entity.FinancialTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Amount:      t.Amount,
		DueDate:     t.DueDate,
		PaymentDate: t.PaymentDate,
		Status:      t.Status,
		Overdue:     t.Overdue(uc.now()),
		OrderID:     t.OrderID,
		CustomerID:  t.CustomerID,
		CreatedAt:   t.CreatedAt,
	}
}
