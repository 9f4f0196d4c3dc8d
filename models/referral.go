package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Pipeline stages. Status always holds one of these five values.
const (
	StatusPending      = "pending"
	StatusContacted    = "contacted"
	StatusInterviewing = "interviewing"
	StatusHired        = "hired"
	StatusRejected     = "rejected"
)

// Stages lists the pipeline stages in display order.
var Stages = []string{StatusPending, StatusContacted, StatusInterviewing, StatusHired, StatusRejected}

// ValidStatus reports whether s is one of the five pipeline stages.
func ValidStatus(s string) bool {
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

type Referral struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	ReferrerID     uint          `gorm:"column:referrer_id;index" json:"referrer_id"`
	CandidateName  string        `gorm:"column:candidate_name;not null" json:"candidate_name"`
	CandidateEmail string        `gorm:"column:candidate_email;not null" json:"candidate_email"`
	CandidatePhone string        `gorm:"column:candidate_phone" json:"candidate_phone"`
	Position       string        `gorm:"column:position;not null" json:"position"`
	Department     string        `gorm:"column:department" json:"department"`
	Experience     string        `gorm:"column:experience" json:"experience"`
	Notes          string        `gorm:"column:notes" json:"notes"`
	ResumeURL      string        `gorm:"column:resume_url" json:"resume_url"`
	SkillTags      StringList    `gorm:"column:skill_tags;type:json" json:"skill_tags"`
	SocialLinks    StringMap     `gorm:"column:social_links;type:json" json:"social_links"`
	Source         string        `gorm:"column:source" json:"source"`
	Status         string        `gorm:"column:status;default:pending;index" json:"status"`
	RecruiterNotes string        `gorm:"column:recruiter_notes" json:"recruiter_notes"`
	NextSteps      string        `gorm:"column:next_steps" json:"next_steps"`
	ActionHistory  ActionHistory `gorm:"column:action_history;type:json" json:"action_history"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ActionEntry is one append-only audit record on a referral.
type ActionEntry struct {
	Action    string    `json:"action"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ActionHistory []ActionEntry

// Append returns the history with a new entry stamped now.
func (h ActionHistory) Append(action, notes string) ActionHistory {
	return append(h, ActionEntry{Action: action, Notes: notes, Timestamp: time.Now()})
}

func (h *ActionHistory) Scan(value interface{}) error {
	return scanJSON(value, h)
}

func (h ActionHistory) Value() (driver.Value, error) {
	if h == nil {
		h = ActionHistory{}
	}
	return json.Marshal(h)
}

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// StringMap stores a string-to-string mapping as a JSON column.
type StringMap map[string]string

func (m *StringMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	return json.Marshal(m)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for JSON column")
	}
}
