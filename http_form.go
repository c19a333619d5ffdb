package validate

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	// ErrBodyRead is returned by Body when the request body cannot be
	// read.
	ErrBodyRead = errors.New("failed to read request body")
)

const contentTypeJSON = "application/json"

// RequestForm extracts field values from an *http.Request and validates
// them as one submission. A field value is resolved from the POST form
// first, then the query string, then the JSON body when the request
// carries one.
//
// Each RequestForm gets a correlation ID that is attached to every
// diagnostic logged while validating the submission.
type RequestForm struct {
	req       *http.Request
	id        string
	validator *Validator

	formOnce sync.Once
	formErr  error

	bodyOnce sync.Once
	body     []byte
	bodyErr  error
}

// NewRequestForm wraps a request for validation.
func NewRequestForm(r *http.Request, opts ...Option) *RequestForm {
	rf := &RequestForm{
		req:       r,
		id:        uuid.NewString(),
		validator: New(opts...),
	}
	rf.validator.log = rf.validator.log.With(zap.String("submission", rf.id))
	return rf
}

// ID returns the submission's correlation ID.
func (rf *RequestForm) ID() string { return rf.id }

// Field implements FieldLookup over the request's fields.
func (rf *RequestForm) Field(name string) (string, bool) {
	v, ok := rf.Value(name)
	if !ok {
		return "", false
	}
	if s, isStr := stringValue(v); isStr {
		return s, true
	}
	// JSON body values may be numbers or booleans.
	return fmt.Sprint(v), true
}

// Value returns the raw value of a field. Form and query values are
// strings; JSON body values keep the type gjson decoded.
func (rf *RequestForm) Value(name string) (any, bool) {
	rf.parseForm()

	if vs, ok := rf.req.PostForm[name]; ok && len(vs) > 0 {
		return vs[0], true
	}
	if vs, ok := rf.req.URL.Query()[name]; ok && len(vs) > 0 {
		return vs[0], true
	}

	if rf.hasJSONBody() {
		body, err := rf.Body()
		if err != nil {
			return nil, false
		}
		if result := gjson.GetBytes(body, name); result.Exists() {
			return result.Value(), true
		}
	}

	return nil, false
}

// Validate evaluates rules against the request's fields and returns the
// error bag. Absent fields are validated as nil, like Form.
func (rf *RequestForm) Validate(rules FieldRules) Errors {
	v := rf.validator.WithLookup(rf)

	errs := make(Errors)
	for field, opts := range rules {
		value, _ := rf.Value(field)
		if failed := v.Failures(value, opts); len(failed) > 0 {
			errs[field] = failed
		}
	}

	rf.validator.log.Debug("form validated",
		zap.Int("fields", len(rules)),
		zap.Int("failed", len(errs)))
	return errs
}

// Body reads and caches the request body. The read happens once; later
// calls return the cached bytes or the original read error.
func (rf *RequestForm) Body() ([]byte, error) {
	rf.bodyOnce.Do(func() {
		if rf.req.Body == nil || rf.req.ContentLength == 0 {
			rf.body = []byte("{}")
			return
		}

		body, err := io.ReadAll(rf.req.Body)
		if err != nil {
			rf.bodyErr = errors.Join(ErrBodyRead, err)
			rf.validator.log.Warn("body read failed", zap.Error(err))
			return
		}

		rf.body = body
		if len(body) == 0 {
			rf.body = []byte("{}")
		}
	})

	return rf.body, rf.bodyErr
}

func (rf *RequestForm) parseForm() {
	rf.formOnce.Do(func() {
		rf.formErr = rf.req.ParseForm()
		if rf.formErr != nil {
			rf.validator.log.Warn("form parse failed", zap.Error(rf.formErr))
		}
	})
}

func (rf *RequestForm) hasJSONBody() bool {
	ct := rf.req.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == contentTypeJSON
}

// ValidateRequest validates one request in a single call using a fresh
// RequestForm.
func ValidateRequest(r *http.Request, rules FieldRules, opts ...Option) Errors {
	return NewRequestForm(r, opts...).Validate(rules)
}
