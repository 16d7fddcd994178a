package v1

import (
	"net/http"

	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContractorHandler struct {
	contractorUC domain.ContractorUsecase
	profileUC    domain.ProfileUsecase
}

// NewContractorHandler registers contractor and contractor profile routes
func NewContractorHandler(r *gin.RouterGroup, contractorUC domain.ContractorUsecase, profileUC domain.ProfileUsecase) {
	handler := &ContractorHandler{contractorUC: contractorUC, profileUC: profileUC}

	contractors := r.Group("/contractors")
	{
		contractors.POST("", handler.CreateContractor)
		contractors.GET("", handler.ListContractors)
		contractors.GET("/:id", handler.GetContractor)
		contractors.PATCH("/:id", handler.UpdateContractor)
		contractors.DELETE("/:id", handler.DeleteContractor)
		contractors.GET("/user/:userId", handler.GetContractorByUser)

		contractors.GET("/profile/email/:email", handler.GetProfile)
		contractors.PATCH("/profile/:email", handler.UpdateProfile)
	}
}

// CreateContractorRequest creates a contractor, optionally bound to a user
type CreateContractorRequest struct {
	UserID            *int64  `json:"userId" binding:"omitempty,gt=0"`
	CompanyName       *string `json:"companyName" binding:"omitempty,max=200,valid_name"`
	CompanyType       *string `json:"companyType" binding:"omitempty,max=100"`
	YearsInBusiness   *int    `json:"yearsInBusiness" binding:"omitempty,min=0,max=200"`
	LicenseNumber     *string `json:"licenseNumber" binding:"omitempty,max=100"`
	InsuranceProvider *string `json:"insuranceProvider" binding:"omitempty,max=200"`
	Website           *string `json:"website" binding:"omitempty,url"`
}

// CreateContractor godoc
// @Summary      Register a contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        body  body      CreateContractorRequest  true  "Contractor data"
// @Success      201   {object}  response.Response{data=domain.Contractor}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req CreateContractorRequest
	if !bindJSON(c, &req) {
		return
	}

	contractor := &domain.Contractor{
		UserID:            req.UserID,
		CompanyName:       req.CompanyName,
		CompanyType:       req.CompanyType,
		YearsInBusiness:   req.YearsInBusiness,
		LicenseNumber:     req.LicenseNumber,
		InsuranceProvider: req.InsuranceProvider,
		Website:           req.Website,
	}
	if err := h.contractorUC.CreateContractor(c, contractor); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Contractor created successfully", contractor)
}

// ListContractors godoc
// @Summary      List contractors
// @Tags         contractors
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Contractor}
// @Router       /contractors [get]
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	contractors, err := h.contractorUC.ListContractors(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contractors retrieved", contractors)
}

// GetContractor godoc
// @Summary      Get a contractor
// @Tags         contractors
// @Produce      json
// @Param        id   path      int  true  "Contractor ID"
// @Success      200  {object}  response.Response{data=domain.Contractor}
// @Failure      404  {object}  response.Response
// @Router       /contractors/{id} [get]
func (h *ContractorHandler) GetContractor(c *gin.Context) {
	id, ok := pathID(c, "id", "contractor")
	if !ok {
		return
	}

	contractor, err := h.contractorUC.GetContractor(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contractor retrieved", contractor)
}

// GetContractorByUser godoc
// @Summary      Get the contractor record of a user
// @Tags         contractors
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=domain.Contractor}
// @Failure      404     {object}  response.Response
// @Router       /contractors/user/{userId} [get]
func (h *ContractorHandler) GetContractorByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId", "user")
	if !ok {
		return
	}

	contractor, err := h.contractorUC.GetContractorByUserID(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contractor retrieved", contractor)
}

// UpdateContractor godoc
// @Summary      Partially update a contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Contractor ID"
// @Param        body  body      domain.ContractorPatch  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Contractor}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /contractors/{id} [patch]
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	id, ok := pathID(c, "id", "contractor")
	if !ok {
		return
	}

	var patch domain.ContractorPatch
	if !bindJSON(c, &patch) {
		return
	}

	contractor, err := h.contractorUC.UpdateContractor(c, id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contractor updated", contractor)
}

// DeleteContractor godoc
// @Summary      Delete a contractor
// @Tags         contractors
// @Produce      json
// @Param        id   path      int  true  "Contractor ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	id, ok := pathID(c, "id", "contractor")
	if !ok {
		return
	}

	if err := h.contractorUC.DeleteContractor(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contractor deleted", nil)
}

// GetProfile godoc
// @Summary      Get a contractor profile by email
// @Tags         profiles
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response{data=domain.ContractorProfile}
// @Failure      404    {object}  response.Response
// @Router       /contractors/profile/email/{email} [get]
func (h *ContractorHandler) GetProfile(c *gin.Context) {
	email, ok := pathEmail(c)
	if !ok {
		return
	}

	profile, err := h.profileUC.GetContractorProfile(c, email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateProfile godoc
// @Summary      Update a contractor profile by email
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        email  path      string                         true  "User email"
// @Param        body   body      domain.ContractorProfilePatch  true  "Fields to change"
// @Success      200    {object}  response.Response{data=domain.ContractorProfile}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /contractors/profile/{email} [patch]
func (h *ContractorHandler) UpdateProfile(c *gin.Context) {
	email, ok := pathEmail(c)
	if !ok {
		return
	}

	var patch domain.ContractorProfilePatch
	if !bindJSON(c, &patch) {
		return
	}

	profile, err := h.profileUC.UpdateContractorProfile(c, email, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}
