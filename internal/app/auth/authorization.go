package auth

// Package auth contains the pure authorization evaluator. Permission to
// mutate or delete a resource is derived at request time from the actor and
// the resource's ownership chain (post -> club -> club creator); nothing is
// stored. All functions are side-effect free and never fail: a missing or
// unknown role has already been normalized to the least-privileged
// "student" by models.NormalizeRole.

import (
	"github.com/campuslink/backend/internal/app/models"
)

// Actor is the requesting user as the evaluator sees it.
type Actor struct {
	Email string
	Role  models.Role
}

// Resource is the ownership chain of a post. ClubCreatorEmail is nil for
// public posts; that branch is simply skipped.
type Resource struct {
	AuthorEmail      string
	ClubCreatorEmail *string
}

func isAdmin(actor Actor) bool {
	return actor.Role == models.RoleSystemAdmin
}

func isClubCreator(actor Actor, res Resource) bool {
	return res.ClubCreatorEmail != nil && actor.Email == *res.ClubCreatorEmail
}

// CanDeletePost reports whether the actor may delete the post: system
// admins, the author, and the creator of the post's club (if any).
func CanDeletePost(actor Actor, res Resource) bool {
	return isAdmin(actor) || actor.Email == res.AuthorEmail || isClubCreator(actor, res)
}

// CanEditPost reports whether the actor may edit the post's content. Unlike
// deletion there is no club-creator override: editing implies attribution of
// authored words, deleting does not.
func CanEditPost(actor Actor, res Resource) bool {
	return isAdmin(actor) || actor.Email == res.AuthorEmail
}

// CanEditComment reports whether the actor may edit a comment. Only the
// comment author may; deliberately not even a system admin.
func CanEditComment(actor Actor, commentAuthorEmail string) bool {
	return actor.Email == commentAuthorEmail
}

// CanManageClub reports whether the actor may update or delete a club: the
// club creator or a system admin.
func CanManageClub(actor Actor, creatorEmail string) bool {
	return isAdmin(actor) || actor.Email == creatorEmail
}

// CanDeleteEvent reports whether the actor may delete an event: the event
// creator or a system admin.
func CanDeleteEvent(actor Actor, creatorEmail string) bool {
	return isAdmin(actor) || actor.Email == creatorEmail
}

// CanDeleteComment reports whether the actor may delete a comment: system
// admins, the comment author, the author of the post it sits on, and the
// creator of the post's club (if any).
func CanDeleteComment(actor Actor, commentAuthorEmail string, post Resource) bool {
	return isAdmin(actor) ||
		actor.Email == commentAuthorEmail ||
		actor.Email == post.AuthorEmail ||
		isClubCreator(actor, post)
}
