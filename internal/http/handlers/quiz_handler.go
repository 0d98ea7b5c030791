// Trivia quiz HTTP handlers.
//
// This file exposes the fixed-question quiz:
//   - GET  /quiz/questions    (the five prompts, in order)
//   - POST /quiz/score        (grade one attempt)
//   - POST /quiz/certificate  (download the pass artifact, text or PDF)
//
// Nothing about an attempt is persisted; the certificate endpoint re-grades
// the submitted answers rather than trusting a client-supplied score.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/certificate"
	"github.com/recipedeck/go-recipe-backend/internal/quiz"
	"github.com/recipedeck/go-recipe-backend/internal/services"
)

// QuizQuestionsResponse carries the prompts in presentation order.
type QuizQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// ScoreQuizRequest is one graded attempt: answers positionally matched to
// the question order.
type ScoreQuizRequest struct {
	Answers []string `json:"answers" binding:"required" example:"avocado,basil,orzo,chickpeas,durian"`
}

// CertificateRequest asks for the pass artifact. Answers are re-graded
// server-side; Format selects "text" (default) or "pdf".
type CertificateRequest struct {
	Username string   `json:"username" example:"marta"`
	Answers  []string `json:"answers" binding:"required"`
	Format   string   `json:"format" example:"pdf"`
}

// QuizQuestions godoc
// @ID          quizQuestions
// @Summary     List quiz questions
// @Tags        Quiz
// @Produce     json
//
// @Success     200  {object} handlers.QuizQuestionsResponse
// @Router      /quiz/questions [get]
func (h *Handlers) QuizQuestions(c *gin.Context) {
	ok(c, http.StatusOK, QuizQuestionsResponse{Questions: quiz.Questions()})
}

// ScoreQuiz godoc
// @ID          scoreQuiz
// @Summary     Grade a quiz attempt
// @Description Grades the submitted answers (case-insensitive exact match) and reports whether the attempt passed (>= 80%).
// @Tags        Quiz
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ScoreQuizRequest  true  "Answers in question order"
//
// @Success     200  {object} quiz.Result
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Router      /quiz/score [post]
func (h *Handlers) ScoreQuiz(c *gin.Context) {
	var req ScoreQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers array is required")
		return
	}
	ok(c, http.StatusOK, quiz.Score(req.Answers))
}

// QuizCertificate godoc
// @ID          quizCertificate
// @Summary     Download the pass certificate
// @Description Re-grades the answers and, on a passing score, streams the certificate as a text or PDF attachment. The artifact is never stored server-side.
// @Tags        Quiz
// @Accept      json
// @Produce     application/pdf
// @Produce     text/plain
//
// @Param       body  body  handlers.CertificateRequest  true  "Username, answers, and format"
//
// @Success     200  {file}   file "Certificate download"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     403  {object} handlers.ErrorResponse "Attempt did not pass"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /quiz/certificate [post]
func (h *Handlers) QuizCertificate(c *gin.Context) {
	var req CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answers array is required")
		return
	}

	res := quiz.Score(req.Answers)
	if !res.Passed {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "quiz not passed; keep trying")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = services.DefaultPosterName
	}

	switch strings.ToLower(strings.TrimSpace(req.Format)) {
	case "pdf":
		data, err := certificate.PDF(username, res.Percentage)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
			return
		}
		c.Header("Content-Disposition", `attachment; filename="certificate.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		c.Header("Content-Disposition", `attachment; filename="certificate.txt"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", certificate.Text(username, res.Percentage))
	}
}
