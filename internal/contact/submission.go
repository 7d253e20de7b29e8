// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/silk/internal/content"
	"github.com/gogpu/silk/internal/locale"
)

// Submission is one contact form post. It is forwarded to the webhook as
// JSON with the same field names.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	Service string `json:"service,omitempty"`
	Budget  string `json:"budget,omitempty"`
	Message string `json:"message"`
	Lang    string `json:"lang,omitempty"`
	Page    string `json:"page,omitempty"`
}

// Field length limits, in characters.
const (
	MinNameLen    = 2
	MinMessageLen = 10
	MaxFieldLen   = 5000
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Normalize trims surrounding whitespace from every field.
func (s *Submission) Normalize() {
	for _, f := range []*string{&s.Name, &s.Email, &s.Phone, &s.Company,
		&s.Service, &s.Budget, &s.Message, &s.Lang, &s.Page} {
		*f = strings.TrimSpace(*f)
	}
}

// Validate checks the submission with the same rules as the form and
// returns the failing fields mapped to messages in the submission's
// language. A nil map means the submission is valid.
func (s *Submission) Validate() map[string]string {
	l, ok := locale.Parse(s.Lang)
	if !ok {
		l = locale.Default
	}
	msg := content.Lookup(l).ContactUs.Form.Errors

	fields := make(map[string]string)
	if utf8.RuneCountInString(s.Name) < MinNameLen {
		fields["name"] = msg.Name
	}
	switch {
	case s.Email == "":
		fields["email"] = msg.Email
	case !emailPattern.MatchString(s.Email):
		fields["email"] = msg.EmailInvalid
	}
	if s.Phone == "" {
		fields["phone"] = msg.Phone
	}
	if utf8.RuneCountInString(s.Message) < MinMessageLen {
		fields["message"] = msg.Message
	}
	for name, v := range map[string]string{
		"name": s.Name, "email": s.Email, "phone": s.Phone, "company": s.Company,
		"service": s.Service, "budget": s.Budget, "message": s.Message,
	} {
		if _, bad := fields[name]; !bad && utf8.RuneCountInString(v) > MaxFieldLen {
			fields[name] = msg.Generic
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
