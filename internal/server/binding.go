package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type bindMessages map[string]map[string]string

// bindForm binds a form request and translates every validation failure into
// a human-readable message, so the admin UI can report all problems at once.
func bindForm(c *gin.Context, req any, messages bindMessages, fallback string) (bool, []string) {
	err := c.ShouldBind(req)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, verr := range verrs {
			msgs = append(msgs, resolveFieldMessage(verr, messages, fallback))
		}
		return false, msgs
	}
	return false, []string{fallback}
}

func resolveFieldMessage(verr validator.FieldError, messages bindMessages, fallback string) string {
	if fieldMsgs, ok := messages[verr.Field()]; ok {
		if msg, ok := fieldMsgs[verr.Tag()]; ok {
			return msg
		}
	}
	return fallback
}
