package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/ajg/form"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

func handleHello(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"greeting": "hello API"})
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// decodeRequest decodes a urlencoded form or JSON body into v. Unknown form keys
// are ignored and an empty body leaves v zeroed.
func decodeRequest(r *http.Request, v any) error {
	var err error

	switch render.GetRequestContentType(r) {
	case render.ContentTypeForm:
		dec := form.NewDecoder(r.Body)
		dec.IgnoreUnknownKeys(true)
		err = dec.Decode(v)
	default:
		err = render.Decode(r, v)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, serverErrorResponse)
}
