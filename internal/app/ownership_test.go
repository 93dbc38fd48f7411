package app

import (
	"errors"
	"testing"
)

func TestAssertOwner(t *testing.T) {
	tests := []struct {
		name    string
		acting  string
		owner   string
		wantErr bool
	}{
		{name: "same user", acting: "u1", owner: "u1"},
		{name: "different user", acting: "u2", owner: "u1", wantErr: true},
		{name: "empty acting", acting: "", owner: "u1", wantErr: true},
		{name: "empty owner", acting: "u1", owner: "", wantErr: true},
		{name: "both empty", acting: "", owner: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertOwner(tt.acting, tt.owner)
			if tt.wantErr {
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("AssertOwner() error = %v, want ErrForbidden", err)
				}
				if errors.Is(err, ErrUnauthorized) {
					t.Error("ownership failure must not look like an authentication failure")
				}
				return
			}
			if err != nil {
				t.Errorf("AssertOwner() error = %v", err)
			}
		})
	}
}
