package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/swiftride/swiftride/internal/pkg/middleware"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
)

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// GetUserByID handles GET /users/:id
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateProfile handles PATCH /users/profile. Accepts either a JSON body or a
// multipart form carrying an optional profile_image file.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.UpdateProfileRequest
	imagePath := ""

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		req = models.UpdateProfileRequest{
			FullName: c.FormValue("full_name"),
			Address:  c.FormValue("address"),
			Street:   c.FormValue("street"),
			District: c.FormValue("district"),
			City:     c.FormValue("city"),
			State:    c.FormValue("state"),
			ZipCode:  c.FormValue("zip_code"),
		}
		if age := c.FormValue("age"); age != "" {
			parsed, err := strconv.Atoi(age)
			if err != nil {
				return utils.BadRequestResponse(c, "Invalid age")
			}
			req.Age = parsed
		}

		if file, err := c.FormFile("profile_image"); err == nil {
			path, err := saveTempUpload(file)
			if err != nil {
				return utils.InternalServerErrorResponse(c, "Failed to read uploaded file")
			}
			imagePath = path
		}
	} else if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req, imagePath)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// saveTempUpload spools a multipart file to disk for the storage client,
// which removes it after the upload
func saveTempUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "swiftride-upload-*")
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}
