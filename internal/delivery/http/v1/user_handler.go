package v1

import (
	"errors"
	"io"
	"net/http"

	"go-marketplace-backend/internal/delivery/http/middleware"
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const maxPhotoSize = 5 << 20

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers user routes
func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := r.Group("/users")
	{
		users.POST("", handler.CreateUser)
		users.GET("", handler.ListUsers)
		users.GET("/:id", handler.GetUser)
		users.PATCH("/:id", handler.UpdateUser)
		users.GET("/email/:email", handler.GetUserByEmail)
		users.POST("/:id/photo",
			middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()),
			handler.UploadPhoto,
		)
	}
}

// CreateUserRequest is the payload for creating a user
type CreateUserRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=120,valid_name"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone" binding:"omitempty,valid_phone"`
	Role         string  `json:"role" binding:"max=40"`
	Location     *string `json:"location" binding:"omitempty,max=200,no_emoji"`
	Bio          *string `json:"bio" binding:"omitempty,max=2000"`
	ProfilePhoto *string `json:"profilePhoto" binding:"omitempty,url"`
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User data"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Location:     req.Location,
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
	}
	if err := h.userUC.CreateUser(c, user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", user)
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUC.ListUsers(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userUC.GetUser(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// GetUserByEmail godoc
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  response.Response{data=domain.User}
// @Failure      404    {object}  response.Response
// @Router       /users/email/{email} [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email, ok := pathEmail(c)
	if !ok {
		return
	}

	user, err := h.userUC.GetUserByEmail(c, email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// UpdateUser godoc
// @Summary      Partially update a user
// @Description  Only fields present in the body change. null clears optional fields.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "User ID"
// @Param        body  body      domain.UserPatch  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	var patch domain.UserPatch
	if !bindJSON(c, &patch) {
		return
	}

	user, err := h.userUC.UpdateUser(c, id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// UploadPhoto godoc
// @Summary      Upload a profile photo
// @Description  The image is resized to fit 512px and stored as JPEG
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      int   true  "User ID"
// @Param        photo  formData  file  true  "Image file (jpeg, png, webp)"
// @Success      200    {object}  response.Response{data=domain.User}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Router       /users/{id}/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize+1024)
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.BadRequest("Photo must be 5MB or smaller"))
			return
		}
		c.Error(apperror.BadRequest("Photo file is required"))
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.Error(apperror.BadRequest("Photo must be 5MB or smaller"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read photo"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read photo"))
		return
	}
	if err := security.ValidatePhoto(fileHeader.Filename, data); err != nil {
		c.Error(apperror.BadRequest("Invalid photo: " + err.Error()))
		return
	}

	user, err := h.userUC.UploadProfilePhoto(c, id, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile photo updated", user)
}
