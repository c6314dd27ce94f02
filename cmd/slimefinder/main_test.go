package main

import "testing"

func TestRunSelfCheckSucceeds(t *testing.T) {
	if code := run([]string{"--selfcheck"}); code != 0 {
		t.Fatalf("run(--selfcheck) = %d, want 0", code)
	}
}
