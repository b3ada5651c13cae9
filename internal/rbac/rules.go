package rbac

// Permission names an action on an admission resource, "resource:action".
// A trailing "*" matches every action on the resource; PermAll matches
// everything.
type Permission string

const (
	PermAll Permission = "*"

	PermFormSubmit  Permission = "form:submit"
	PermFormViewOwn Permission = "form:view-own"
	PermFormViewAll Permission = "form:view-all"

	PermUserViewOwn   Permission = "user:view-own"
	PermUserDeleteOwn Permission = "user:delete-own"

	PermNoticeView   Permission = "notice:view"
	PermNoticeManage Permission = "notice:manage"

	PermQuestionView   Permission = "question:view"
	PermQuestionManage Permission = "question:manage"
)

// Default policy for the admission gateway. Applicants hold "user";
// admission officers hold "admin".
var RolePermissions = map[string][]Permission{
	"user": {
		PermFormSubmit,
		PermFormViewOwn,
		PermQuestionView,
		PermNoticeView,
		PermUserViewOwn,
		PermUserDeleteOwn,
	},
	"admin": {
		PermAll,
	},
}
