package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
)

// multipartOverhead covers boundaries and headers around the file part.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadUC domain.UploadUsecase
	maxBytes int64
}

func NewUploadHandler(protected *gin.RouterGroup, uploadUC domain.UploadUsecase, maxBytes int64) {
	handler := &UploadHandler{uploadUC: uploadUC, maxBytes: maxBytes}

	protected.POST("/uploads", handler.Upload)
}

// Upload godoc
// @Summary      Upload a photo, CV or company logo
// @Description  Candidates upload kind=avatar or kind=cv, employers kind=logo. Images are resized and stored as JPEG. The URL is saved on the profile.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  query     string  true  "avatar, cv or logo"
// @Param        file  formData  file    true  "File"
// @Success      201   {object}  response.Response{data=domain.UploadResult}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /uploads [post]
// @Security     BearerAuth
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Fichier trop volumineux", nil))
			return
		}
		c.Error(apperror.BadRequest("Fichier manquant (champ \"file\")"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Fichier illisible"))
		return
	}
	defer file.Close()

	// One byte past the limit is enough for the usecase to refuse it
	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		c.Error(apperror.BadRequest("Fichier illisible"))
		return
	}

	result, err := h.uploadUC.Upload(c, domain.UploadRequest{
		UserID:   currentUserID(c),
		Role:     c.GetString(string(domain.KeyUserRole)),
		Kind:     c.Query("kind"),
		Filename: fileHeader.Filename,
		Data:     data,
		IP:       c.ClientIP(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Fichier enregistré", result)
}
