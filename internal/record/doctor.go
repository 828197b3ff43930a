// Package record holds the entities managed by the dashboard and the rules
// a draft must satisfy before it becomes one.
package record

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Status is the activity state of a doctor.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Doctor is a member of the courier network's doctor directory.
type Doctor struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Specialization string
	Address        string
	Status         Status
	JoinDate       time.Time
	TotalOrders    int
}

// Draft is the unvalidated field set submitted for create or update.
// An empty Status means "default" (active on create, unchanged on update);
// a nil TotalOrders means the field was not passed.
type Draft struct {
	Name           string
	Email          string
	Phone          string
	Specialization string
	Address        string
	Status         Status
	TotalOrders    *int
}

// DraftOf copies the editable fields of d.
func DraftOf(d Doctor) Draft {
	return Draft{
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Specialization: d.Specialization,
		Address:        d.Address,
		Status:         d.Status,
	}
}

// Normalize trims surrounding whitespace from every text field.
func (d Draft) Normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Specialization = strings.TrimSpace(d.Specialization)
	d.Address = strings.TrimSpace(d.Address)
	d.Status = Status(strings.ToLower(strings.TrimSpace(string(d.Status))))
	return d
}

// Validate checks the normalized draft. Missing required fields are listed
// in form order.
func (d Draft) Validate() error {
	d = d.Normalize()
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Phone == "" {
		missing = append(missing, "phone")
	}
	if d.Specialization == "" {
		missing = append(missing, "specialization")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if d.Status != "" && !d.Status.Valid() {
		return &ValidationError{Fields: []string{"status"}, Reason: fmt.Sprintf("unknown status %q", d.Status)}
	}
	if d.TotalOrders != nil && *d.TotalOrders < 0 {
		return &ValidationError{Fields: []string{"totalOrders"}, Reason: "must not be negative"}
	}
	return nil
}

// NewDoctor builds a fresh record from a validated draft.
func NewDoctor(id string, d Draft, joined time.Time) Doctor {
	d = d.Normalize()
	status := d.Status
	if status == "" {
		status = StatusActive
	}
	return Doctor{
		ID:             id,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Specialization: d.Specialization,
		Address:        d.Address,
		Status:         status,
		JoinDate:       DateOf(joined),
	}
}

// Apply returns doc with the draft's editable fields replacing its own.
// ID and JoinDate are never touched.
func (doc Doctor) Apply(d Draft) Doctor {
	d = d.Normalize()
	doc.Name = d.Name
	doc.Email = d.Email
	doc.Phone = d.Phone
	doc.Specialization = d.Specialization
	doc.Address = d.Address
	if d.Status != "" {
		doc.Status = d.Status
	}
	if d.TotalOrders != nil {
		doc.TotalOrders = *d.TotalOrders
	}
	return doc
}

// Matches reports whether the lowercased query occurs in the name, email or
// specialization. The query is not trimmed; only "" matches everything.
func (doc Doctor) Matches(query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(doc.Name), q) ||
		strings.Contains(strings.ToLower(doc.Email), q) ||
		strings.Contains(strings.ToLower(doc.Specialization), q)
}

// DateOf drops the clock part of t, keeping its calendar date as seen in
// t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Stats is the derived summary shown on the doctors page.
type Stats struct {
	Total       int
	Active      int
	TotalOrders int
	AvgOrders   int
}

// Summarize computes Stats over docs.
func Summarize(docs []Doctor) Stats {
	var s Stats
	s.Total = len(docs)
	for _, d := range docs {
		if d.Status == StatusActive {
			s.Active++
		}
		s.TotalOrders += d.TotalOrders
	}
	if s.Total > 0 {
		s.AvgOrders = int(math.Floor(float64(s.TotalOrders)/float64(s.Total) + 0.5))
	}
	return s
}
