package rbac

import "testing"

func TestDefaultRolePermissions(t *testing.T) {
	c := NewChecker(nil)

	cases := []struct {
		role string
		perm Permission
		want bool
	}{
		{"user", PermFormSubmit, true},
		{"user", PermFormViewOwn, true},
		{"user", PermFormViewAll, false},
		{"user", PermNoticeManage, false},
		{"admin", PermFormViewAll, true},
		{"admin", PermNoticeManage, true},
		{"admin", Permission("anything:at-all"), true},
		{"", PermFormSubmit, false},
		{"guest", PermNoticeView, false},
	}
	for _, c2 := range cases {
		if got := c.Has(c2.role, c2.perm); got != c2.want {
			t.Fatalf("Has(%q, %q) = %v, want %v", c2.role, c2.perm, got, c2.want)
		}
	}
}

func TestPrefixWildcard(t *testing.T) {
	c := NewChecker(map[string][]Permission{
		"reviewer": {Permission("form:*")},
	})
	if !c.Has("reviewer", PermFormViewAll) {
		t.Fatal("form:* should cover form:view-all")
	}
	if c.Has("reviewer", PermNoticeManage) {
		t.Fatal("form:* should not cover notice:manage")
	}
}

func TestAny(t *testing.T) {
	c := NewChecker(nil)
	if !c.Any("user", PermNoticeManage, PermFormSubmit) {
		t.Fatal("Any should pass when one permission matches")
	}
	if c.Any("user", PermNoticeManage, PermQuestionManage) {
		t.Fatal("Any should fail when nothing matches")
	}
}
