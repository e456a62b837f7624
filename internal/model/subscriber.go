package model

import "time"

// NotifyKind enumerates the toggleable notification preferences of a Subscriber.
// A fixed enum instead of string-keyed field lookup keeps the generic toggle
// handler while preserving type safety.
type NotifyKind int

const (
	NotifySuccess NotifyKind = iota
	NotifyFailure
	NotifyBuild
	NotifyDeploy
	NotifyTest
)

// NotifyKinds lists all preference kinds in display order.
var NotifyKinds = []NotifyKind{NotifySuccess, NotifyFailure, NotifyBuild, NotifyDeploy, NotifyTest}

func (k NotifyKind) String() string {
	switch k {
	case NotifySuccess:
		return "success"
	case NotifyFailure:
		return "failure"
	case NotifyBuild:
		return "build"
	case NotifyDeploy:
		return "deploy"
	case NotifyTest:
		return "test"
	default:
		return "unknown"
	}
}

// Subscriber is a chat registration for notifications, uniquely keyed by
// (ChatID, Repository).
type Subscriber struct {
	ID             string
	ChatID         string
	Username       string
	GithubUsername string
	Repository     string
	ProjectID      string
	IsActive       bool

	NotifyOnSuccess bool // default false
	NotifyOnFailure bool // default true
	NotifyOnBuild   bool // default true
	NotifyOnDeploy  bool // default true
	NotifyOnTest    bool // default true

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotifyFlag returns the preference flag for the given kind.
func (s Subscriber) NotifyFlag(kind NotifyKind) bool {
	switch kind {
	case NotifySuccess:
		return s.NotifyOnSuccess
	case NotifyFailure:
		return s.NotifyOnFailure
	case NotifyBuild:
		return s.NotifyOnBuild
	case NotifyDeploy:
		return s.NotifyOnDeploy
	case NotifyTest:
		return s.NotifyOnTest
	default:
		return false
	}
}

// SetNotifyFlag updates the preference flag for the given kind.
func (s *Subscriber) SetNotifyFlag(kind NotifyKind, value bool) {
	switch kind {
	case NotifySuccess:
		s.NotifyOnSuccess = value
	case NotifyFailure:
		s.NotifyOnFailure = value
	case NotifyBuild:
		s.NotifyOnBuild = value
	case NotifyDeploy:
		s.NotifyOnDeploy = value
	case NotifyTest:
		s.NotifyOnTest = value
	}
}
