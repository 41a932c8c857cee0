package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervue/internal/controller"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	adminQuestionService service.AdminQuestionService
}

func NewAdminQuestionController(adminQuestionService service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{adminQuestionService: adminQuestionService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a technical question
// @Description MCQ questions need 2-4 options labelled A-D with exactly one correct option. Other types may carry an expected answer.
// @Tags Admin - Technical Questions
// @Accept json
// @Produce json
// @Param question body dto.TechnicalQuestionCreateDTO true "Question with options or expected answer"
// @Success 201 {object} dto.AdminQuestionResponse "Question created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tech-questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.TechnicalQuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}

	resp, err := c.adminQuestionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "create_question", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
