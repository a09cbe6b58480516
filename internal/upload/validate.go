package upload

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Candidate describes an inbound file before it is accepted. Content is never
// inspected here: a spoofed MIMEType passes unchanged.
type Candidate struct {
	MIMEType string
	Size     int64
}

// Reason classifies a failed validation.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMissing
	ReasonType
	ReasonSize
)

// Result is the outcome of Validate.
type Result struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Reason Reason `json:"-"`
}

const msgNoFile = "No file provided"

// Validate checks c against the policy. Rules run in order (presence, type,
// size) and the first failure is the only one reported.
func (p *Policy) Validate(c *Candidate) Result {
	if c == nil {
		return Result{Error: msgNoFile, Reason: ReasonMissing}
	}
	if !p.allows(c.MIMEType) {
		return Result{Error: p.TypeMessage(), Reason: ReasonType}
	}
	if c.Size > p.maxFileSize {
		return Result{Error: p.SizeLimitMessage(), Reason: ReasonSize}
	}
	return Result{Valid: true}
}

// TypeMessage is the user-facing text for a disallowed file type.
func (p *Policy) TypeMessage() string {
	return "Invalid file type. Allowed types: " + strings.Join(p.AllowedExtensions(), ", ")
}

// SizeLimitMessage is the user-facing text for an oversized file.
func (p *Policy) SizeLimitMessage() string {
	return fmt.Sprintf("File too large. Maximum size: %sMB", p.MaxFileSizeMB())
}

// MaxFileSizeMB formats the limit in mebibytes, rounded to one decimal place
// with trailing zeros dropped ("5", "2.5").
func (p *Policy) MaxFileSizeMB() string {
	mb := float64(p.maxFileSize) / (1024 * 1024)
	return strconv.FormatFloat(math.Round(mb*10)/10, 'f', -1, 64)
}
