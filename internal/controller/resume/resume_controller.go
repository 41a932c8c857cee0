package resume

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/controller"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/service"
	"github.com/rs/zerolog/log"
)

// multipart framing allowance on top of the file size cap
const multipartOverhead = 1 << 20

type ResumeController struct {
	resumeService service.ResumeService
	maxBytes      int64
}

func NewResumeController(resumeService service.ResumeService, validator service.UploadValidator) *ResumeController {
	return &ResumeController{resumeService: resumeService, maxBytes: validator.MaxBytes()}
}

// Upload godoc
// @Summary Upload a resume
// @Description Upload a PDF or DOCX resume (max 10 MB). The text is extracted, stored, and keyword based interview questions are generated.
// @Tags Resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF or DOCX resume"
// @Param user_id formData string false "Optional user id"
// @Success 201 {object} dto.ResumeUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported file type"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 422 {object} dto.ErrorResponse "Text could not be extracted"
// @Failure 429 {object} dto.ErrorResponse "Too many uploads"
// @Failure 500 {object} dto.ErrorResponse "Resume could not be stored"
// @Router /resumes [post]
func (c *ResumeController) Upload(ctx *gin.Context) {
	resp, ok := c.upload(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// LegacyUpload serves POST /api/upload-resume with the original 200 status
// and camelCase body.
func (c *ResumeController) LegacyUpload(ctx *gin.Context) {
	resp, ok := c.upload(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.LegacyResumeUploadResponse{
		Success: resp.Success,
		Message: resp.Message,
		Data: dto.LegacyResumeUploadData{
			ID:            resp.Data.ID,
			FileName:      resp.Data.FileName,
			TextLength:    resp.Data.TextLength,
			ParsedAt:      resp.Data.ParsedAt,
			ExtractedText: resp.Data.ExtractedText,
		},
	})
}

func (c *ResumeController) upload(ctx *gin.Context) (*dto.ResumeUploadResponse, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBytes+multipartOverhead)

	header, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			controller.RespondError(ctx, "upload", apperror.Wrap(apperror.KindFileTooLarge, service.FileTooLargeMessage(c.maxBytes), err))
		default:
			log.Warn().Err(err).Msg("Resume Upload: no file in request")
			controller.RespondError(ctx, "upload", apperror.Wrap(apperror.KindMissingFile, "No file uploaded", err))
		}
		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		controller.RespondError(ctx, "upload", apperror.Wrap(apperror.KindExtractionFailure, "Failed to read the uploaded file", err))
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, c.maxBytes+1))
	if err != nil {
		controller.RespondError(ctx, "upload", apperror.Wrap(apperror.KindExtractionFailure, "Failed to read the uploaded file", err))
		return nil, false
	}
	size := header.Size
	if int64(len(data)) > size {
		size = int64(len(data))
	}

	resp, err := c.resumeService.Upload(ctx.Request.Context(), service.UploadInput{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     size,
		Data:     data,
		UserID:   ctx.PostForm("user_id"),
	})
	if err != nil {
		controller.RespondError(ctx, "upload", err)
		return nil, false
	}
	return resp, true
}

// List godoc
// @Summary List uploaded resumes
// @Description Returns every stored resume in upload order, read from the first healthy store.
// @Tags Resumes
// @Produce json
// @Success 200 {object} dto.ResumeListResponse
// @Failure 500 {object} dto.ErrorResponse "No store could be read"
// @Router /resumes [get]
func (c *ResumeController) List(ctx *gin.Context) {
	resumes, err := c.resumeService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "list_resumes", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ResumeListResponse{Resumes: resumes})
}

// LegacyList serves GET /api/get-resumes in the original camelCase shape.
func (c *ResumeController) LegacyList(ctx *gin.Context) {
	resumes, err := c.resumeService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "list_resumes", err)
		return
	}
	out := make([]dto.LegacyResumeDTO, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, dto.LegacyResumeDTO{
			ID:            r.ID,
			FileName:      r.FileName,
			ExtractedText: r.ExtractedText,
			ParsedAt:      r.ParsedAt,
			FileType:      r.FileType,
		})
	}
	ctx.JSON(http.StatusOK, dto.LegacyResumeListResponse{Resumes: out})
}

// Get godoc
// @Summary Get a resume
// @Tags Resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} dto.ResumeDTO
// @Failure 404 {object} dto.ErrorResponse "Resume not found"
// @Router /resumes/{id} [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	resume, err := c.resumeService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "get_resume", err)
		return
	}
	ctx.JSON(http.StatusOK, resume)
}

// Questions godoc
// @Summary Interview questions for a resume
// @Description Keyword based questions generated from the resume text.
// @Tags Resumes
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} dto.ResumeQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "Resume not found"
// @Router /resumes/{id}/questions [get]
func (c *ResumeController) Questions(ctx *gin.Context) {
	questions, err := c.resumeService.Questions(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "resume_questions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
