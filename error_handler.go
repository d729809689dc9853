package main

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type (
	ErrorHandlerFunc func(recovery interface{}, c *gin.Context)
)

func ErrorHandler(handlers ...ErrorHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			for _, handler := range handlers {
				handler(rec, c)
			}

			if rec != nil || len(c.Errors) > 0 {
				c.Abort()
			}
		}()

		c.Next()
	}
}

// ErrorResponseHandler translates collected request errors into the
// service's JSON error payload. Private errors and panics never leak
// their text to the caller.
func ErrorResponseHandler() ErrorHandlerFunc {
	return func(recovery interface{}, c *gin.Context) {
		publicErrors := c.Errors.ByType(gin.ErrorTypePublic)
		privateLen := len(c.Errors.ByType(gin.ErrorTypePrivate))

		if privateLen == 0 && len(publicErrors) == 0 && recovery == nil {
			return
		}

		message := "Something went wrong"
		if len(publicErrors) > 0 {
			message = publicErrors[0].Error()
		}

		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
	}
}

func ErrorCaptureHandler(client *raven.Client, errorsStacktrace bool) ErrorHandlerFunc {
	return func(recovery interface{}, c *gin.Context) {
		tags := map[string]string{
			"endpoint": c.Request.RequestURI,
		}

		if recovery != nil {
			stacktrace := raven.NewStacktrace(4, 3, nil)
			recStr := fmt.Sprint(recovery)
			err := errors.New(recStr)
			go client.CaptureMessageAndWait(
				recStr,
				tags,
				raven.NewException(err, stacktrace),
				raven.NewHttp(c.Request),
			)
		}

		for _, err := range c.Errors {
			if errorsStacktrace {
				stacktrace := errorStacktrace(client, err.Err)
				go client.CaptureMessageAndWait(
					err.Error(),
					tags,
					raven.NewException(err.Err, stacktrace),
					raven.NewHttp(c.Request),
				)
			} else {
				go client.CaptureErrorAndWait(err.Err, tags)
			}
		}
	}
}

func PanicLogger() ErrorHandlerFunc {
	return func(recovery interface{}, c *gin.Context) {
		if recovery != nil {
			logger.Error(recovery)
			debug.PrintStack()
		}
	}
}

func ErrorLogger() ErrorHandlerFunc {
	return func(recovery interface{}, c *gin.Context) {
		for _, err := range c.Errors {
			logger.Error(err.Err)
		}
	}
}

// errorStacktrace prefers the stacktrace recorded by pkg/errors on the
// deepest cause; raven's own capture is the fallback.
func errorStacktrace(client *raven.Client, err error) *raven.Stacktrace {
	st := causeStackTrace(err)
	if st == nil {
		return raven.NewStacktrace(0, 3, client.IncludePaths())
	}

	var frames []*raven.StacktraceFrame
	for _, f := range st {
		pc := uintptr(f) - 1
		file := "unknown"
		var line int
		if fn := runtime.FuncForPC(pc); fn != nil {
			file, line = fn.FileLine(pc)
		}
		if frame := raven.NewStacktraceFrame(pc, file, line, 3, client.IncludePaths()); frame != nil {
			frames = append(frames, frame)
		}
	}

	if len(frames) == 0 {
		return raven.NewStacktrace(0, 3, client.IncludePaths())
	}

	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}

	return &raven.Stacktrace{Frames: frames}
}

func causeStackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	for err != nil {
		if ster, ok := err.(interface {
			StackTrace() errors.StackTrace
		}); ok {
			st = ster.StackTrace()
		}

		cer, ok := err.(interface {
			Cause() error
		})
		if !ok {
			break
		}
		err = cer.Cause()
	}

	return st
}
