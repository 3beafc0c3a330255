package web

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Respond writes data as JSON with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	if status == http.StatusNoContent {
		c.Status(status)
		return nil
	}
	c.JSON(status, data)
	return nil
}

// RespondHTML renders the named template.
func (c *Context) RespondHTML(name string, data interface{}, status int) error {
	c.HTML(status, name, data)
	return nil
}

// RespondFile writes data as a download named filename. disposition is
// "attachment" or "inline"; the filename is quoted or RFC 2231 encoded.
func (c *Context) RespondFile(disposition, filename, contentType string, data []byte) error {
	header := mime.FormatMediaType(disposition, map[string]string{"filename": filename})
	if header == "" {
		header = disposition
	}
	c.Header("Content-Disposition", header)
	c.Data(http.StatusOK, contentType, data)
	return nil
}

// Redirect answers a form post with 303 so that a reload does not resubmit.
func (c *Context) Redirect(location string) error {
	c.Context.Redirect(http.StatusSeeOther, location)
	return nil
}

// RespondError writes err using the status it carries. Browsers get the
// error page; everything else gets the JSON envelope.
func (c *Context) RespondError(err error) error {
	status, webErr := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR : %s %s : %+v", c.Request.Method, c.Request.URL.Path, err)
	}

	message := err.Error()
	if status >= http.StatusInternalServerError && webErr == nil {
		message = http.StatusText(status)
	}

	if wantsHTML(c) {
		c.HTML(status, "error", map[string]interface{}{
			"Status":  status,
			"Message": message,
		})
		return nil
	}

	body := map[string]interface{}{
		"error":  message,
		"status": false,
	}
	if webErr != nil && len(webErr.Fields) > 0 {
		body["fields"] = webErr.Fields
	}
	c.JSON(status, body)
	return nil
}

func wantsHTML(c *Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// GetQueryFunc reads an optional query value converted to kind. It returns
// nil when the key is absent; conversion failures are collected and
// reported by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, key string) interface{} {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}

	switch kind {
	case reflect.String:
		return &raw
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s: must be an integer", key))
			return nil
		}
		return &v
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s: must be a boolean", key))
			return nil
		}
		return &v
	default:
		c.queryErrs = append(c.queryErrs, fmt.Sprintf("%s: unsupported kind %s", key, kind))
		return nil
	}
}

// ValidQuery reports the failures gathered by GetQueryFunc.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(errors.New(strings.Join(c.queryErrs, ", ")), http.StatusBadRequest)
}

// BindFunc binds the request body into obj and checks that the named
// fields are not empty.
func (c *Context) BindFunc(obj interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	v := reflect.Indirect(reflect.ValueOf(obj))
	var missing []string
	for _, name := range requiredFields {
		for _, field := range strings.Split(name, ",") {
			f := v.FieldByName(strings.TrimSpace(field))
			if !f.IsValid() {
				continue
			}
			if f.IsZero() || (f.Kind() == reflect.String && strings.TrimSpace(f.String()) == "") {
				missing = append(missing, field)
			}
		}
	}
	if len(missing) > 0 {
		return NewRequestError(errors.Errorf("required fields: %s", strings.Join(missing, ", ")), http.StatusBadRequest)
	}

	return nil
}
