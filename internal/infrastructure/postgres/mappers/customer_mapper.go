package mappers

import (
	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/postgres/models"
)

func ToDomainAddress(cols models.AddressColumns) domain.Address {
	return domain.Address{
		Street:      cols.Street,
		SubDistrict: cols.SubDistrict,
		District:    cols.District,
		Province:    cols.Province,
		Postcode:    cols.Postcode,
	}
}

func ToGORMAddress(address domain.Address) models.AddressColumns {
	return models.AddressColumns{
		Street:      address.Street,
		SubDistrict: address.SubDistrict,
		District:    address.District,
		Province:    address.Province,
		Postcode:    address.Postcode,
	}
}

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:          model.ID,
		StoreID:     model.StoreID,
		FullName:    model.FullName,
		PhoneNumber: model.PhoneNumber,
		IDNumber:    model.IDNumber,
		Address:     ToDomainAddress(model.Address),
		CreatedAt:   model.CreatedAt.UTC(),
		UpdatedAt:   model.UpdatedAt.UTC(),
	}
}

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:          customer.ID,
		StoreID:     customer.StoreID,
		FullName:    customer.FullName,
		PhoneNumber: customer.PhoneNumber,
		IDNumber:    customer.IDNumber,
		Address:     ToGORMAddress(customer.Address),
		CreatedAt:   customer.CreatedAt.UTC(),
		UpdatedAt:   customer.UpdatedAt.UTC(),
	}
}

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:              model.ID,
		Name:            model.Name,
		Phone:           model.Phone,
		TaxID:           model.TaxID,
		Address:         ToDomainAddress(model.Address),
		InterestPresets: []domain.InterestPreset(model.InterestPresets),
		OwnerUserID:     model.OwnerUserID,
		Active:          model.Active,
		CreatedAt:       model.CreatedAt.UTC(),
		UpdatedAt:       model.UpdatedAt.UTC(),
	}
}

func ToGORMStore(store *domain.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:              store.ID,
		Name:            store.Name,
		Phone:           store.Phone,
		TaxID:           store.TaxID,
		Address:         ToGORMAddress(store.Address),
		InterestPresets: store.InterestPresets,
		OwnerUserID:     store.OwnerUserID,
		Active:          store.Active,
		CreatedAt:       store.CreatedAt.UTC(),
		UpdatedAt:       store.UpdatedAt.UTC(),
	}
}
