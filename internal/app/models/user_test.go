package models

import "testing"

func TestParseRoleDefaultsToGuest(t *testing.T) {
	t.Parallel()

	cases := map[string]Role{
		"admin":     RoleAdmin,
		"teacher":   RoleTeacher,
		"student":   RoleStudent,
		"guest":     RoleGuest,
		"":          RoleGuest,
		"moderator": RoleGuest,
		"Admin":     RoleGuest,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoleRanking(t *testing.T) {
	t.Parallel()

	if !RoleAdmin.AtLeast(RoleTeacher) {
		t.Error("admin should rank at least teacher")
	}
	if RoleTeacher.AtLeast(RoleAdmin) {
		t.Error("teacher should not rank at least admin")
	}
	if !RoleGuest.AtLeast(RoleGuest) {
		t.Error("a role should rank at least itself")
	}
	// Unknown roles rank as guest.
	if Role("superuser").AtLeast(RoleStudent) {
		t.Error("unknown role should rank below student")
	}
}
