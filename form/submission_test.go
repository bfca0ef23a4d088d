package form

import "testing"

func TestSubmissionCycle(t *testing.T) {
	var submission Submission
	if submission.State() != Idle || submission.Disabled() {
		t.Fatalf("zero submission must be idle and enabled")
	}
	if got := submission.Label("Login", "Login..."); got != "Login" {
		t.Errorf("idle label %q", got)
	}

	submission.Begin()
	if !submission.Disabled() {
		t.Errorf("submit control must be disabled while submitting")
	}
	if got := submission.Label("Login", "Login..."); got != "Login..." {
		t.Errorf("busy label %q", got)
	}

	submission.Fail()
	if submission.State() != Failed || submission.Disabled() {
		t.Errorf("unexpected state %v", submission.State())
	}

	// Retrying resets the previous outcome.
	submission.Begin()
	if submission.State() != Submitting {
		t.Errorf("unexpected state %v", submission.State())
	}
	submission.Succeed()
	if submission.State().String() != "success" {
		t.Errorf("unexpected state %v", submission.State())
	}
}
