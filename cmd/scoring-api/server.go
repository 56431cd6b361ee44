package main

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weit-project/eit-toolkit/lib"
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

type scoreRequest struct {
	Original string `json:"original" binding:"required"`
	Answer   string `json:"answer"`
}

type alignRequest struct {
	Original string `json:"original" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/score", validateBody, s.Score)
	r.POST("/align", validateBody, s.Align)
	r.GET("/detectors", s.ListDetectors)
	r.GET("/healthz", s.Healthz)
}

func (s server) Score(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("invalid request body - must be json with an original sentence")))
		return
	}

	result, err := s.controller.Score(c.Request.Context(), req.Original, req.Answer)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s server) Align(c *gin.Context) {
	var req alignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("invalid request body - must be json with original and answer")))
		return
	}

	c.JSON(http.StatusOK, s.controller.Align(req.Original, req.Answer))
}

func (s server) ListDetectors(c *gin.Context) {
	c.JSON(http.StatusOK, s.controller.ListDetectors())
}

func (s server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
}

func requestID(c *gin.Context) {
	id := c.GetHeader("X-Request-Id")
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(lib.RequestIDKey, id)
	c.Header("X-Request-Id", id)
	c.Next()
}

func validateBody(c *gin.Context) {
	if c.Request.Body == nil {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("request body missing")))
	} else if _, err := c.Request.Body.Read(nil); err == io.EOF {
		handleError(c, NewHttpError(http.StatusBadRequest, errors.New("request body missing")))
	} else {
		c.Next()
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, http.StatusInternalServerError, errors.New("abort called on nil error"))
		return
	}
	var httpErr HttpError
	if errors.As(err, &httpErr) {
		abort(c, httpErr.code, httpErr.error)
		return
	}
	abort(c, http.StatusInternalServerError, err)
}

func abort(c *gin.Context, code int, err error) {
	switch {
	case code <= 500:
		c.JSON(code, map[string]interface{}{
			"status":  code,
			"message": err.Error(),
		})
		c.Abort()
	default:
		_ = c.AbortWithError(code, err)
	}
}
