package domain

import (
	"context"

	"go-marketplace-backend/pkg/optional"
)

// Contractor extends a user with company attributes. At most one per user.
type Contractor struct {
	ID                int64   `json:"id"`
	UserID            *int64  `json:"userId"`
	CompanyName       *string `json:"companyName"`
	CompanyType       *string `json:"companyType"`
	YearsInBusiness   *int    `json:"yearsInBusiness"`
	LicenseNumber     *string `json:"licenseNumber"`
	InsuranceProvider *string `json:"insuranceProvider"`
	Website           *string `json:"website"`
}

type ContractorPatch struct {
	CompanyName       optional.Value[string] `json:"companyName" binding:"omitempty,max=200,valid_name"`
	CompanyType       optional.Value[string] `json:"companyType" binding:"omitempty,max=100"`
	YearsInBusiness   optional.Value[int]    `json:"yearsInBusiness" binding:"omitempty,min=0,max=200"`
	LicenseNumber     optional.Value[string] `json:"licenseNumber" binding:"omitempty,max=100"`
	InsuranceProvider optional.Value[string] `json:"insuranceProvider" binding:"omitempty,max=200"`
	Website           optional.Value[string] `json:"website" binding:"omitempty,url"`
}

func (p ContractorPatch) ApplyTo(c *Contractor) {
	p.CompanyName.ApplyPtr(&c.CompanyName)
	p.CompanyType.ApplyPtr(&c.CompanyType)
	p.YearsInBusiness.ApplyPtr(&c.YearsInBusiness)
	p.LicenseNumber.ApplyPtr(&c.LicenseNumber)
	p.InsuranceProvider.ApplyPtr(&c.InsuranceProvider)
	p.Website.ApplyPtr(&c.Website)
}

type ContractorRepository interface {
	Create(ctx context.Context, contractor *Contractor) error
	GetByID(ctx context.Context, id int64) (*Contractor, error)
	GetByUserID(ctx context.Context, userID int64) (*Contractor, error)
	List(ctx context.Context) ([]Contractor, error)
	Update(ctx context.Context, contractor *Contractor) error
	Delete(ctx context.Context, id int64) error
}

type ContractorUsecase interface {
	CreateContractor(ctx context.Context, contractor *Contractor) error
	GetContractor(ctx context.Context, id int64) (*Contractor, error)
	GetContractorByUserID(ctx context.Context, userID int64) (*Contractor, error)
	ListContractors(ctx context.Context) ([]Contractor, error)
	UpdateContractor(ctx context.Context, id int64, patch ContractorPatch) (*Contractor, error)
	DeleteContractor(ctx context.Context, id int64) error
}
