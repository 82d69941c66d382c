package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		err  error
		want int
	}{
		{&ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{&ErrInvalidCredentials{}, http.StatusUnauthorized},
		{&ErrUserNotFound{UserID: id}, http.StatusNotFound},
		{&ErrDocumentNotFound{DocumentID: id}, http.StatusNotFound},
		{&ErrUnknownTemplate{TemplateID: "brutalist"}, http.StatusBadRequest},
		{&ErrValidation{Field: "email", Message: "invalid"}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()

	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "a@b.c"}).Error(), "a@b.c")
	assert.Contains(t, (&ErrDocumentNotFound{DocumentID: id}).Error(), id.String())
	assert.Contains(t, (&ErrUnknownTemplate{TemplateID: "brutalist"}).Error(), "brutalist")
	assert.Contains(t, (&ErrValidation{Field: "email", Message: "invalid"}).Error(), "email")
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
}
