package mappers

import (
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
)

func ToDomainContract(model *models.ContractModel) *domain.Contract {
	return &domain.Contract{
		ID:             model.ID,
		ContractNumber: model.ContractNumber,
		StoreID:        model.StoreID,
		CustomerID:     model.CustomerID,
		Item: domain.Item{
			Brand:            model.Item.Brand,
			Model:            model.Item.Model,
			Type:             model.Item.Type,
			SerialNo:         model.Item.SerialNo,
			Accessories:      model.Item.Accessories,
			ConditionPercent: model.Item.ConditionPercent,
			Defects:          model.Item.Defects,
			Note:             model.Item.Note,
			Images:           []string(model.Item.Images),
		},
		PawnDetails: domain.PawnDetails{
			EstimatedPrice:      model.EstimatedPrice,
			PawnedPrice:         model.PawnedPrice,
			InterestRatePercent: model.InterestRatePercent,
			PeriodDays:          model.PeriodDays,
		},
		Dates: domain.ContractDates{
			StartDate:     model.StartDate.UTC(),
			DueDate:       model.DueDate.UTC(),
			RedeemDate:    utcPtr(model.RedeemDate),
			SuspendedDate: utcPtr(model.SuspendedDate),
		},
		Status:  domain.ContractStatus(model.Status),
		Remarks: model.Remarks,
		Snapshot: domain.Snapshot{
			TotalInterest:   model.TotalInterest,
			InterestPaid:    model.InterestPaid,
			RemainingAmount: model.RemainingAmount,
			ComputedAt:      model.SnapshotAt.UTC(),
		},
		Version:   model.Version,
		CreatedAt: model.CreatedAt.UTC(),
		UpdatedAt: model.UpdatedAt.UTC(),
	}
}

func ToGORMContract(contract *domain.Contract) *models.ContractModel {
	return &models.ContractModel{
		ID:             contract.ID,
		ContractNumber: contract.ContractNumber,
		StoreID:        contract.StoreID,
		CustomerID:     contract.CustomerID,
		Item: models.ItemColumns{
			Brand:            contract.Item.Brand,
			Model:            contract.Item.Model,
			Type:             contract.Item.Type,
			SerialNo:         contract.Item.SerialNo,
			Accessories:      contract.Item.Accessories,
			ConditionPercent: contract.Item.ConditionPercent,
			Defects:          contract.Item.Defects,
			Note:             contract.Item.Note,
			Images:           contract.Item.Images,
		},
		EstimatedPrice:      contract.PawnDetails.EstimatedPrice,
		PawnedPrice:         contract.PawnDetails.PawnedPrice,
		InterestRatePercent: contract.PawnDetails.InterestRatePercent,
		PeriodDays:          contract.PawnDetails.PeriodDays,
		StartDate:           contract.Dates.StartDate.UTC(),
		DueDate:             contract.Dates.DueDate.UTC(),
		RedeemDate:          utcPtr(contract.Dates.RedeemDate),
		SuspendedDate:       utcPtr(contract.Dates.SuspendedDate),
		Status:              string(contract.Status),
		Remarks:             contract.Remarks,
		TotalInterest:       contract.Snapshot.TotalInterest,
		InterestPaid:        contract.Snapshot.InterestPaid,
		RemainingAmount:     contract.Snapshot.RemainingAmount,
		SnapshotAt:          contract.Snapshot.ComputedAt.UTC(),
		Version:             contract.Version,
		CreatedAt:           contract.CreatedAt.UTC(),
		UpdatedAt:           contract.UpdatedAt.UTC(),
	}
}

func ToDomainTransaction(model *models.ContractTransactionModel) domain.Transaction {
	return domain.Transaction{
		ID:            model.ID,
		ContractID:    model.ContractID,
		StoreID:       model.StoreID,
		Sequence:      model.Sequence,
		Type:          domain.TransactionType(model.Type),
		Amount:        model.Amount,
		PaymentMethod: domain.PaymentMethod(model.PaymentMethod),
		BeforeBalance: model.BeforeBalance,
		AfterBalance:  model.AfterBalance,
		ActorID:       model.ActorID,
		Note:          model.Note,
		CreatedAt:     model.CreatedAt.UTC(),
	}
}

func ToGORMTransaction(tx *domain.Transaction) *models.ContractTransactionModel {
	return &models.ContractTransactionModel{
		ID:            tx.ID,
		ContractID:    tx.ContractID,
		StoreID:       tx.StoreID,
		Sequence:      tx.Sequence,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		PaymentMethod: string(tx.PaymentMethod),
		BeforeBalance: tx.BeforeBalance,
		AfterBalance:  tx.AfterBalance,
		ActorID:       tx.ActorID,
		Note:          tx.Note,
		CreatedAt:     tx.CreatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
