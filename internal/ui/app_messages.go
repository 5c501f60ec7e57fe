package ui

import "agripredict/internal/notify"

// CommandMsg carries a typed user action to the root model.
type CommandMsg struct {
	Command Command
}

// EstimateRequestMsg is sent when the estimator form is submitted.
// PH is the raw text; the root model validates it before estimating.
type EstimateRequestMsg struct {
	Crop   string
	Region string
	PH     string
}

// NotifyMsg asks the root model to show a notice.
type NotifyMsg struct {
	Message  string
	Severity notify.Severity
}

// noticeExpiredMsg is delivered when a notice's display time is up.
type noticeExpiredMsg struct {
	ID uint64
}
