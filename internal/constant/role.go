package constant

// CollaboratorRole is the role a user holds on one generated document.
type CollaboratorRole string

const (
	CollaboratorRoleEditor    CollaboratorRole = "editor"
	CollaboratorRoleReviewer  CollaboratorRole = "reviewer"
	CollaboratorRoleApprover  CollaboratorRole = "approver"
	CollaboratorRoleSignatory CollaboratorRole = "signatory"
	CollaboratorRoleViewer    CollaboratorRole = "viewer"
)

func (r CollaboratorRole) Valid() bool {
	switch r {
	case CollaboratorRoleEditor, CollaboratorRoleReviewer, CollaboratorRoleApprover, CollaboratorRoleSignatory, CollaboratorRoleViewer:
		return true
	}
	return false
}

type DocumentPermission string

const (
	DocumentEdit    DocumentPermission = "document:edit"
	DocumentComment DocumentPermission = "document:comment"
	DocumentApprove DocumentPermission = "document:approve"
	DocumentSign    DocumentPermission = "document:sign"
)
