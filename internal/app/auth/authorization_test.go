package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuslink/backend/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestCanDeletePost(t *testing.T) {
	clubPost := Resource{AuthorEmail: "author@uni.edu", ClubCreatorEmail: strPtr("creator@uni.edu")}
	publicPost := Resource{AuthorEmail: "author@uni.edu"}

	tests := []struct {
		name  string
		actor Actor
		res   Resource
		want  bool
	}{
		{"admin may delete any post", Actor{Email: "x@uni.edu", Role: models.RoleSystemAdmin}, clubPost, true},
		{"author may delete own post", Actor{Email: "author@uni.edu", Role: models.RoleStudent}, clubPost, true},
		{"club creator may delete club post", Actor{Email: "creator@uni.edu", Role: models.RoleStudent}, clubPost, true},
		{"stranger may not delete", Actor{Email: "other@uni.edu", Role: models.RoleStudent}, clubPost, false},
		{"teacher role grants nothing extra", Actor{Email: "other@uni.edu", Role: models.RoleTeacher}, clubPost, false},
		{"club creator branch skipped on public post", Actor{Email: "creator@uni.edu", Role: models.RoleStudent}, publicPost, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeletePost(tt.actor, tt.res))
		})
	}
}

func TestCanEditPost(t *testing.T) {
	clubPost := Resource{AuthorEmail: "author@uni.edu", ClubCreatorEmail: strPtr("creator@uni.edu")}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"author may edit", Actor{Email: "author@uni.edu", Role: models.RoleStudent}, true},
		{"admin may edit", Actor{Email: "x@uni.edu", Role: models.RoleSystemAdmin}, true},
		{"club creator may NOT edit", Actor{Email: "creator@uni.edu", Role: models.RoleStudent}, false},
		{"stranger may not edit", Actor{Email: "other@uni.edu", Role: models.RoleStudent}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditPost(tt.actor, clubPost))
		})
	}
}

func TestCanEditComment(t *testing.T) {
	// Comment edits are author-only: not even a system admin may edit.
	assert.True(t, CanEditComment(Actor{Email: "author@uni.edu", Role: models.RoleStudent}, "author@uni.edu"))
	assert.False(t, CanEditComment(Actor{Email: "admin@uni.edu", Role: models.RoleSystemAdmin}, "author@uni.edu"))
	assert.False(t, CanEditComment(Actor{Email: "other@uni.edu", Role: models.RoleStudent}, "author@uni.edu"))
}

func TestCanDeleteComment(t *testing.T) {
	post := Resource{AuthorEmail: "postauthor@uni.edu", ClubCreatorEmail: strPtr("creator@uni.edu")}

	tests := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"comment author may delete", Actor{Email: "commenter@uni.edu", Role: models.RoleStudent}, true},
		{"post author may delete", Actor{Email: "postauthor@uni.edu", Role: models.RoleStudent}, true},
		{"club creator may delete", Actor{Email: "creator@uni.edu", Role: models.RoleStudent}, true},
		{"admin may delete", Actor{Email: "admin@uni.edu", Role: models.RoleSystemAdmin}, true},
		{"stranger may not delete", Actor{Email: "other@uni.edu", Role: models.RoleStudent}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeleteComment(tt.actor, "commenter@uni.edu", post))
		})
	}
}

func TestCanManageClub(t *testing.T) {
	assert.True(t, CanManageClub(Actor{Email: "creator@uni.edu", Role: models.RoleStudent}, "creator@uni.edu"))
	assert.True(t, CanManageClub(Actor{Email: "admin@uni.edu", Role: models.RoleSystemAdmin}, "creator@uni.edu"))
	assert.False(t, CanManageClub(Actor{Email: "other@uni.edu", Role: models.RoleTeacher}, "creator@uni.edu"))
}

func TestNormalizeRoleDegradesUnknown(t *testing.T) {
	assert.Equal(t, models.RoleStudent, models.NormalizeRole(""))
	assert.Equal(t, models.RoleStudent, models.NormalizeRole("superuser"))
	assert.Equal(t, models.RoleSystemAdmin, models.NormalizeRole("systemadmin"))
	assert.Equal(t, models.RoleTeacher, models.NormalizeRole("teacher"))
}
