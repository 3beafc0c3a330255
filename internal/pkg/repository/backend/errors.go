package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"attendance/console/internal/entity"

	"github.com/pkg/errors"
)

// Kind classifies a failed backend call.
type Kind int

const (
	// KindServer is any non-2xx answer without field attribution.
	KindServer Kind = iota
	// KindNetwork means no HTTP answer was received at all.
	KindNetwork
	// KindValidation is a non-2xx answer carrying an errors envelope.
	KindValidation
	// KindConflict is a 409; fields are kept when the body has them.
	KindConflict
	// KindNotFound is a 404.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "server"
	}
}

// Error is the typed failure of a backend call.
type Error struct {
	Kind    Kind
	Status  int
	Fields  entity.FieldErrors
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (%d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err. Errors that did not come from the client
// count as server failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServer
}

// FieldsOf returns the field errors carried by err, if any.
func FieldsOf(err error) entity.FieldErrors {
	var e *Error
	if errors.As(err, &e) && e.Fields != nil {
		return e.Fields
	}
	return nil
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// envelope covers {"errors": {field: msg | [msg]}} plus the "detail" and
// "message" bodies common in Python and Node backends.
type envelope struct {
	Errors  map[string]json.RawMessage `json:"errors"`
	Detail  json.RawMessage            `json:"detail"`
	Message string                     `json:"message"`
}

type detailItem struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

func decodeError(status int, body []byte) *Error {
	e := &Error{Kind: KindServer, Status: status}

	var env envelope
	if len(body) > 0 && json.Unmarshal(body, &env) == nil {
		e.Fields = decodeFields(env.Errors)
		e.Message = env.Message

		if len(env.Detail) > 0 {
			var detail string
			var items []detailItem
			switch {
			case json.Unmarshal(env.Detail, &detail) == nil:
				e.Message = detail
			case json.Unmarshal(env.Detail, &items) == nil:
				for _, item := range items {
					if len(item.Loc) == 0 {
						continue
					}
					if e.Fields == nil {
						e.Fields = entity.FieldErrors{}
					}
					field := fmt.Sprint(item.Loc[len(item.Loc)-1])
					e.Fields[field] = append(e.Fields[field], item.Msg)
				}
			}
		}
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusConflict:
		e.Kind = KindConflict
	case status >= 400 && status < 500 && !e.Fields.Empty():
		e.Kind = KindValidation
	}

	return e
}

func decodeFields(raw map[string]json.RawMessage) entity.FieldErrors {
	if len(raw) == 0 {
		return nil
	}
	fields := make(entity.FieldErrors, len(raw))
	for name, value := range raw {
		var one string
		if err := json.Unmarshal(value, &one); err == nil {
			if one != "" {
				fields[name] = []string{one}
			}
			continue
		}
		var many []string
		if err := json.Unmarshal(value, &many); err == nil && len(many) > 0 {
			fields[name] = many
		}
	}
	return fields
}
