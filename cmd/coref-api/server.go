package main

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
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

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/annotate", validateBody, s.Annotate)
	r.POST("/links", validateBody, s.Links)
	r.GET("/health", s.Health)
}

func (s server) Health(c *gin.Context) {
	c.JSON(200, map[string]string{"status": "ok"})
}

func (s server) Annotate(c *gin.Context) {
	content, ok := allowedContentTypeEnumMap[c.ContentType()]
	if !ok {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/plain, text/html or application/json")))
		return
	}

	annotated, err := s.controller.Annotate(c.Request.Body, content)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, annotated)
}

func (s server) Links(c *gin.Context) {
	if allowedContentTypeEnumMap[c.ContentType()] != contentTypeJSON {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be application/json")))
		return
	}

	links, err := s.controller.Links(c.Request.Body)
	if err != nil {
		handleError(c, NewHttpError(400, err))
		return
	}

	c.JSON(200, links)
}

func validateBody(c *gin.Context) {
	if c.Request.Body == nil {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else if _, err := c.Request.Body.Read(nil); err == io.EOF {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else {
		c.Next()
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, 500, e)
	}
}

func abort(c *gin.Context, code int, err error) {
	c.JSON(code, map[string]interface{}{
		"status":  code,
		"message": err.Error(),
	})
	c.Abort()
}
