package controller

import (
	"testing"

	"github.com/azhuravlev/diplomdocs/internal/auth"
	"github.com/azhuravlev/diplomdocs/internal/model"
)

func TestCanManageDiplomaFile(t *testing.T) {
	owned := &model.DiplomaProject{Student: &model.Student{UserID: "user-1"}}
	unlinked := &model.DiplomaProject{Student: &model.Student{}}

	tests := []struct {
		name     string
		authUser *auth.JWTPayload
		diploma  *model.DiplomaProject
		want     bool
	}{
		{"staff on any project", &auth.JWTPayload{ID: "user-2", IsStaff: true}, owned, true},
		{"owner on own project", &auth.JWTPayload{ID: "user-1"}, owned, true},
		{"other user on foreign project", &auth.JWTPayload{ID: "user-2"}, owned, false},
		{"non-staff on project without a linked account", &auth.JWTPayload{ID: "user-1"}, unlinked, false},
		{"non-staff on project without a student", &auth.JWTPayload{ID: "user-1"}, &model.DiplomaProject{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canManageDiplomaFile(tt.authUser, tt.diploma); got != tt.want {
				t.Errorf("canManageDiplomaFile() = %v, want %v", got, tt.want)
			}
		})
	}
}
