package domain

import "context"

// WorkerProfile is the user record merged with its worker record.
// Worker fields stay empty when the user has not registered as a worker.
type WorkerProfile struct {
	UserID       int64   `json:"userId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Role         string  `json:"role"`
	Location     *string `json:"location"`
	Bio          *string `json:"bio"`
	ProfilePhoto *string `json:"profilePhoto"`

	WorkerID       *int64   `json:"workerId,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Experience     *int     `json:"experience,omitempty"`
	HourlyRate     *float64 `json:"hourlyRate,omitempty"`
	Availability   *string  `json:"availability,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

func NewWorkerProfile(u *User, w *Worker) *WorkerProfile {
	p := &WorkerProfile{
		UserID:       u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		Location:     u.Location,
		Bio:          u.Bio,
		ProfilePhoto: u.ProfilePhoto,
	}
	if w != nil {
		id := w.ID
		p.WorkerID = &id
		p.Skills = w.Skills
		p.Experience = w.Experience
		p.HourlyRate = w.HourlyRate
		p.Availability = w.Availability
		p.Certifications = w.Certifications
	}
	return p
}

// ContractorProfile is the user record merged with its contractor record.
type ContractorProfile struct {
	UserID       int64   `json:"userId"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Role         string  `json:"role"`
	Location     *string `json:"location"`
	Bio          *string `json:"bio"`
	ProfilePhoto *string `json:"profilePhoto"`

	ContractorID      *int64  `json:"contractorId,omitempty"`
	CompanyName       *string `json:"companyName,omitempty"`
	CompanyType       *string `json:"companyType,omitempty"`
	YearsInBusiness   *int    `json:"yearsInBusiness,omitempty"`
	LicenseNumber     *string `json:"licenseNumber,omitempty"`
	InsuranceProvider *string `json:"insuranceProvider,omitempty"`
	Website           *string `json:"website,omitempty"`
}

func NewContractorProfile(u *User, c *Contractor) *ContractorProfile {
	p := &ContractorProfile{
		UserID:       u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		Location:     u.Location,
		Bio:          u.Bio,
		ProfilePhoto: u.ProfilePhoto,
	}
	if c != nil {
		id := c.ID
		p.ContractorID = &id
		p.CompanyName = c.CompanyName
		p.CompanyType = c.CompanyType
		p.YearsInBusiness = c.YearsInBusiness
		p.LicenseNumber = c.LicenseNumber
		p.InsuranceProvider = c.InsuranceProvider
		p.Website = c.Website
	}
	return p
}

// WorkerProfilePatch is a partial update spanning the user and worker records.
type WorkerProfilePatch struct {
	UserPatch
	WorkerPatch
}

// ContractorProfilePatch is a partial update spanning the user and contractor records.
type ContractorProfilePatch struct {
	UserPatch
	ContractorPatch
}

// ProfileRepository persists a user together with its role record.
// Both writes commit or roll back together. The role record is created
// when it has no ID yet.
type ProfileRepository interface {
	SaveWorkerProfile(ctx context.Context, user *User, worker *Worker) error
	SaveContractorProfile(ctx context.Context, user *User, contractor *Contractor) error
}

type ProfileUsecase interface {
	GetWorkerProfile(ctx context.Context, email string) (*WorkerProfile, error)
	UpdateWorkerProfile(ctx context.Context, email string, patch WorkerProfilePatch) (*WorkerProfile, error)
	GetContractorProfile(ctx context.Context, email string) (*ContractorProfile, error)
	UpdateContractorProfile(ctx context.Context, email string, patch ContractorProfilePatch) (*ContractorProfile, error)
}
