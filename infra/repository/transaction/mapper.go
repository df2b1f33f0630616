package transaction

import (
	"github.com/amirasaad/pocketpilot/pkg/dto"
)

func mapCreateDTOToModel(create *dto.TransactionCreate) Transaction {
	return Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		DomainID:    create.DomainID,
		GoalID:      create.GoalID,
		Amount:      create.Amount,
		Type:        create.Type,
		Source:      create.Source,
		Description: create.Description,
		Date:        create.Date.UTC(),
	}
}

func mapModelToReadDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          tx.ID,
		UserID:      tx.UserID,
		DomainID:    tx.DomainID,
		GoalID:      tx.GoalID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Source:      tx.Source,
		Description: tx.Description,
		Date:        tx.Date.UTC(),
		CreatedAt:   tx.CreatedAt,
	}
}
