package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/api/metrics"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

type questionRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

type answerRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// List handles GET /api/questions: one page of the board, newest first.
//
// @Summary      List board questions
// @Tags         board
// @Produce      json
// @Param        page  query     int  false  "Page number (0-based)"
// @Success      200   {object}  domain.QuestionPage
// @Router       /api/questions [get]
func (h *BoardHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.boardService.ListQuestions(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Detail handles GET /api/board/detail/:id: one question with its answers.
//
// @Summary      Get a question with answers
// @Tags         board
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  domain.Question
// @Failure      404  {object}  map[string]string
// @Router       /api/board/detail/{id} [get]
func (h *BoardHandler) Detail(c echo.Context) error {
	question, err := h.boardService.GetQuestion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, question)
}

// Create handles POST /api/question/create. Authenticated only.
//
// @Summary      Create a question
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     AccessToken
// @Param        body  body      questionRequest  true  "Question"
// @Success      201   {object}  domain.Question
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/question/create [post]
func (h *BoardHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req questionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	question, err := h.boardService.CreateQuestion(c.Request().Context(), principal.Username, req.Subject, req.Content)
	if err != nil {
		return err
	}

	metrics.QuestionsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, question)
}

// Modify handles PUT /api/question/modify/:id. Author only.
//
// @Summary      Modify a question
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     AccessToken
// @Param        id    path      string           true  "Question ID"
// @Param        body  body      questionRequest  true  "New subject and content"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/question/modify/{id} [put]
func (h *BoardHandler) Modify(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req questionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.boardService.ModifyQuestion(c.Request().Context(), principal.Username, c.Param("id"), req.Subject, req.Content); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "question updated"})
}

// Delete handles DELETE /api/question/delete/:id. Author only.
//
// @Summary      Delete a question
// @Tags         board
// @Produce      json
// @Security     AccessToken
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/question/delete/{id} [delete]
func (h *BoardHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.boardService.DeleteQuestion(c.Request().Context(), principal.Username, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "question deleted"})
}

// CreateAnswer handles POST /api/answer/create/:questionID. Authenticated only.
//
// @Summary      Answer a question
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     AccessToken
// @Param        questionID  path      string         true  "Question ID"
// @Param        body        body      answerRequest  true  "Answer"
// @Success      201         {object}  domain.Answer
// @Failure      404         {object}  map[string]string
// @Router       /api/answer/create/{questionID} [post]
func (h *BoardHandler) CreateAnswer(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	answer, err := h.boardService.CreateAnswer(c.Request().Context(), principal.Username, c.Param("questionID"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, answer)
}
