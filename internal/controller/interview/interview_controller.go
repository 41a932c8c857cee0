package interview

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervue/internal/controller"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	questionService service.TechnicalQuestionService
	responseService service.ResponseService
}

func NewInterviewController(qs service.TechnicalQuestionService, rs service.ResponseService) *InterviewController {
	return &InterviewController{questionService: qs, responseService: rs}
}

// ListQuestions godoc
// @Summary List technical questions
// @Description Filter the question bank by tech stack, difficulty and type. Premium questions are included unless include_premium=false.
// @Tags Technical Questions
// @Produce json
// @Param tech_stack query string false "Tech stack, e.g. React"
// @Param difficulty query string false "easy, medium or hard"
// @Param type query string false "mcq, short_answer or long_answer"
// @Param include_premium query bool false "Include premium questions (default true)"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tech-questions [get]
func (c *InterviewController) ListQuestions(ctx *gin.Context) {
	var query dto.QuestionListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		log.Warn().Err(err).Msg("Interview ListQuestions: invalid query")
		controller.BadRequest(ctx, "Invalid query parameters", err)
		return
	}
	questions, err := c.questionService.List(ctx.Request.Context(), query)
	if err != nil {
		controller.RespondError(ctx, "list_questions", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionListResponse{Questions: questions})
}

// TechStacks godoc
// @Summary List tech stacks
// @Tags Technical Questions
// @Produce json
// @Success 200 {object} dto.TechStacksResponse
// @Router /tech-questions/stacks [get]
func (c *InterviewController) TechStacks(ctx *gin.Context) {
	stacks, err := c.questionService.TechStacks(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "tech_stacks", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TechStacksResponse{TechStacks: stacks})
}

// QuestionDetails godoc
// @Summary Get a technical question
// @Description MCQ questions come with their options (without the answer), others with the expected answer.
// @Tags Technical Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetailsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /tech-questions/{id} [get]
func (c *InterviewController) QuestionDetails(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	details, err := c.questionService.Details(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "question_details", err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// SubmitResponse godoc
// @Summary Submit an answer
// @Description For MCQ questions user_answer is the selected option id, sent as a string or an integer. Numbers are matched as written, so 3.0 does not match option 3. Unknown option ids and blank answers are rejected with 400. Correctness and the correct option are returned.
// @Tags Responses
// @Accept json
// @Produce json
// @Param response body dto.SubmitResponseRequest true "Answer submission"
// @Success 201 {object} dto.SubmitResponseResult
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /responses [post]
func (c *InterviewController) SubmitResponse(ctx *gin.Context) {
	c.submit(ctx, http.StatusCreated)
}

// LegacySubmitResponse answers 200 like the pre-v1 route did.
func (c *InterviewController) LegacySubmitResponse(ctx *gin.Context) {
	c.submit(ctx, http.StatusOK)
}

func (c *InterviewController) submit(ctx *gin.Context, successStatus int) {
	var req dto.SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Interview SubmitResponse: failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	result, err := c.responseService.Submit(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "submit_response", err)
		return
	}
	ctx.JSON(successStatus, result)
}

// ListUserResponses godoc
// @Summary List a user's responses
// @Description Newest first.
// @Tags Responses
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.UserResponsesResponse
// @Router /users/{user_id}/responses [get]
func (c *InterviewController) ListUserResponses(ctx *gin.Context) {
	responses, err := c.responseService.ListByUser(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		controller.RespondError(ctx, "list_responses", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UserResponsesResponse{Responses: responses})
}

// GenerateFeedback godoc
// @Summary Generate AI feedback for a response
// @Description Scores the response and stores the score and feedback on it.
// @Tags Responses
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Failure 502 {object} dto.ErrorResponse "Feedback service unavailable"
// @Router /responses/{id}/feedback [post]
func (c *InterviewController) GenerateFeedback(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	feedback, err := c.responseService.GenerateFeedback(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "generate_feedback", err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}
